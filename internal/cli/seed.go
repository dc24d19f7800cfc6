package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/reforco/internal/config"
	"github.com/mrlokans/reforco/internal/database"
)

// SeedCommand creates the store if needed and inserts the demo students
// when it holds none.
type SeedCommand struct {
	DatabasePath string
	LogLevel     string

	Out io.Writer
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{Out: os.Stdout}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the store file")
	fs.StringVar(&cmd.LogLevel, "log-level", config.DefaultDatabaseLogLevel, "SQL log level: silent, error, warn or info")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the store and insert two demo students if it has no students yet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run(ctx context.Context) error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath, database.WithLogLevel(database.ParseLogLevel(cmd.LogLevel)))
	if err != nil {
		return err
	}
	defer db.Close()

	seeded, err := db.SeedIfEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if !seeded {
		count, err := db.CountStudents(ctx)
		if err != nil {
			return fmt.Errorf("failed to count students: %w", err)
		}
		fmt.Fprintf(cmd.Out, "Store %s already has %d student(s), nothing to seed\n", absDBPath, count)
		return nil
	}

	fmt.Fprintf(cmd.Out, "Seeded demo students into %s\n", absDBPath)
	return nil
}
