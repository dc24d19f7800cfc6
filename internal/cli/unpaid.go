package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/mrlokans/reforco/internal/config"
	"github.com/mrlokans/reforco/internal/database"
	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/services"
	"github.com/mrlokans/reforco/internal/validation"
)

// UnpaidCommand prints the students with no payment for a month.
type UnpaidCommand struct {
	DatabasePath string
	MonthYear    string

	Out io.Writer
	now func() time.Time
}

func NewUnpaidCommand() *UnpaidCommand {
	return &UnpaidCommand{Out: os.Stdout, now: time.Now}
}

func (cmd *UnpaidCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("unpaid", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the store file")
	fs.StringVar(&cmd.MonthYear, "month", "", "Billing month as YYYY-MM (default: current month)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s unpaid [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the students without a payment record for a month.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s unpaid -month 2025-06\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.MonthYear == "" {
		cmd.MonthYear = entities.MonthYear(cmd.now())
	}
	if !validation.IsMonthYear(cmd.MonthYear) {
		return fmt.Errorf("invalid -month %q, expected YYYY-MM", cmd.MonthYear)
	}
	return nil
}

func (cmd *UnpaidCommand) Run(ctx context.Context) error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	if _, err := os.Stat(absDBPath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", absDBPath)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	unpaid, err := services.NewReportService(db).UnpaidStudents(ctx, cmd.MonthYear)
	if err != nil {
		return err
	}

	if len(unpaid) == 0 {
		fmt.Fprintf(cmd.Out, "Every student has paid %s\n", cmd.MonthYear)
		return nil
	}

	fmt.Fprintf(cmd.Out, "%d student(s) without payment for %s\n\n", len(unpaid), cmd.MonthYear)
	w := tabwriter.NewWriter(cmd.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tDAY\tAMOUNT\tCONTACT")
	for _, st := range unpaid {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%s\n",
			st.ID, st.Name, st.ClassID, st.PaymentDay, st.Amount, st.Contact)
	}
	return w.Flush()
}
