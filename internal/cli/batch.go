package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/wtqexec/internal/batch"
	"github.com/roach88/wtqexec/internal/dataset"
	"github.com/roach88/wtqexec/internal/store"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Database string
	Workers  int
	Timeout  time.Duration

	// IDs allows overriding the run ID generator (for testing).
	// If nil, defaults to batch.UUIDv7Generator.
	IDs batch.RunIDGenerator

	// Now allows overriding the report clock (for testing).
	Now func() time.Time
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	return newBatchCommand(&BatchOptions{RootOptions: rootOpts})
}

func newBatchCommand(opts *BatchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <suite>",
		Short: "Evaluate every logical form in a suite",
		Long: `Evaluate every candidate logical form of every example in a suite.

Suites are YAML (.yaml, .yml), JSON Lines (.jsonl) or CUE (.cue) files.
Each distinct table is read once and shared by all workers. A form that
exceeds --timeout is recorded as TIMEOUT. With --db the report is stored
and can be listed with the runs command.

The command exits 1 when any form failed with an error.

Example:
  wtqexec batch suite.yaml
  wtqexec batch suite.cue --db runs.db --workers 8 --timeout 2s`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database for storing the run")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent executions (default GOMAXPROCS)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "per-form execution timeout (0 disables)")

	return cmd
}

func runBatch(opts *BatchOptions, suitePath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	suite, err := dataset.Load(suitePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return outputError(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("suite not found: %s", suitePath), nil)
		}
		return outputError(formatter, ExitCommandError, ErrCodeDataset, fmt.Sprintf("failed to load suite %s", suitePath), err)
	}
	formatter.VerboseLog("Loaded %d example(s) from %s", len(suite.Examples), suitePath)

	var st *store.Store
	if opts.Database != "" {
		st, err = store.Open(opts.Database)
		if err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStore, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &batch.Runner{
		Workers: opts.Workers,
		Timeout: opts.Timeout,
		Logger:  logger,
		IDs:     opts.IDs,
		Now:     opts.Now,
	}
	report, runErr := runner.Run(ctx, suite)

	if st != nil {
		// Partial reports from an interrupted run are stored too.
		if err := st.WriteRun(context.WithoutCancel(ctx), report); err != nil {
			return outputError(formatter, ExitCommandError, ErrCodeStore, "failed to store run", err)
		}
		formatter.VerboseLog("Stored run %s in %s", report.RunID, opts.Database)
	}

	if err := printReport(formatter, report); err != nil {
		return err
	}

	if runErr != nil {
		return WrapExitError(ExitFailure, "batch run interrupted", runErr)
	}
	if report.Errors > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d form(s) failed", report.Errors))
	}
	return nil
}

// printReport writes a report: the full report as JSON, or a results
// table followed by a summary line as text.
func printReport(formatter *OutputFormatter, report *batch.Report) error {
	if formatter.IsJSON() {
		return formatter.Success(report)
	}

	if len(report.Results) > 0 {
		rows := make([][]string, 0, len(report.Results))
		for _, res := range report.Results {
			rows = append(rows, resultRow(res))
		}
		formatter.Table([]string{"EXAMPLE", "FORM", "CORRECT", "DENOTATION / ERROR"}, rows)
	}
	fmt.Fprintln(formatter.Writer, summaryLine(report))
	return nil
}

func resultRow(res batch.Result) []string {
	outcome := strings.Join(res.Denotation, " | ")
	if res.ErrorCode != "" {
		outcome = res.ErrorCode
	}
	return []string{res.ExampleID, strconv.Itoa(res.FormIndex), strconv.FormatBool(res.Correct), outcome}
}

func summaryLine(report *batch.Report) string {
	return fmt.Sprintf("run %s: %d/%d examples answered (%.1f%%), %d/%d forms correct, %d error(s)",
		report.RunID,
		report.ExamplesCorrect, report.Examples, 100*report.Accuracy(),
		report.Correct, report.Forms,
		report.Errors,
	)
}
