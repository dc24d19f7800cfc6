package entrypoint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/reforco/internal/config"
	"github.com/mrlokans/reforco/internal/database"
)

func TestDatabaseOptions(t *testing.T) {
	tests := []struct {
		name      string
		seed      bool
		wantCount int64
	}{
		{"seeds demo students", true, 2},
		{"leaves the store empty", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Database{
				Path:     filepath.Join(t.TempDir(), "store.db"),
				LogLevel: "silent",
				SeedDemo: tt.seed,
			}

			db, err := database.Init(context.Background(), cfg.Path, DatabaseOptions(cfg)...)
			require.NoError(t, err)
			defer db.Close()

			count, err := db.CountStudents(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
