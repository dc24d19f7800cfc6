package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/reforco/internal/entities"
)

func TestSeedCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "store.db")
	var out bytes.Buffer

	cmd := NewSeedCommand()
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-log-level", "silent"}))

	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, out.String(), "Seeded demo students")

	out.Reset()
	require.NoError(t, cmd.Run(context.Background()))
	assert.Contains(t, out.String(), "already has 2 student(s)")
}

func TestUnpaidCommand_ParseFlags(t *testing.T) {
	t.Run("defaults to the current month", func(t *testing.T) {
		cmd := NewUnpaidCommand()
		cmd.now = func() time.Time { return time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC) }

		require.NoError(t, cmd.ParseFlags(nil))
		assert.Equal(t, "2025-06", cmd.MonthYear)
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		cmd := NewUnpaidCommand()

		err := cmd.ParseFlags([]string{"-month", "June"})
		assert.ErrorContains(t, err, "invalid -month")
	})
}

func TestUnpaidCommand_Run(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "store.db")

	seed := NewSeedCommand()
	seed.Out = &bytes.Buffer{}
	require.NoError(t, seed.ParseFlags([]string{"-db", dbPath, "-log-level", "silent"}))
	require.NoError(t, seed.Run(context.Background()))

	// The seed pays the first student for the current month only.
	var out bytes.Buffer
	cmd := NewUnpaidCommand()
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-db", dbPath, "-month", entities.MonthYear(time.Now())}))
	require.NoError(t, cmd.Run(context.Background()))

	assert.Contains(t, out.String(), "1 student(s) without payment")
	assert.Contains(t, out.String(), "Bruno Costa")
	assert.NotContains(t, out.String(), "Ana Silva")
}

func TestUnpaidCommand_MissingDatabase(t *testing.T) {
	cmd := NewUnpaidCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-db", filepath.Join(t.TempDir(), "missing.db"), "-month", "2025-06"}))

	err := cmd.Run(context.Background())
	assert.ErrorContains(t, err, "database not found")
}
