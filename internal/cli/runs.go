package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/wtqexec/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List stored batch runs",
		Long: `List the batch runs stored in a database, oldest first.

With a run ID, print that run's results in suite order.

Example:
  wtqexec runs --db runs.db
  wtqexec runs --db runs.db 01927c3e-8f5a-7c2e-9b1d-3a4f5e6d7c8b --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runRuns(opts, runID, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, runID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Open would create a missing database; listing one is a user error.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return outputError(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database), nil)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if runID != "" {
		report, err := st.ReadRun(ctx, runID)
		if errors.Is(err, store.ErrRunNotFound) {
			return outputError(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("run not found: %s", runID), nil)
		}
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStore, "failed to read run", err)
		}
		return printReport(formatter, report)
	}

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return outputError(formatter, ExitCommandError, ErrCodeStore, "failed to list runs", err)
	}
	if formatter.IsJSON() {
		return formatter.Success(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no runs")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.RunID,
			r.Suite,
			r.StartedAt.Format(time.RFC3339),
			fmt.Sprintf("%d/%d", r.ExamplesCorrect, r.Examples),
			fmt.Sprintf("%d/%d", r.Correct, r.Forms),
			strconv.Itoa(r.Errors),
		})
	}
	formatter.Table([]string{"RUN", "SUITE", "STARTED", "EXAMPLES", "FORMS", "ERRORS"}, rows)
	return nil
}
