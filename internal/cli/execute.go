package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wtqexec/internal/answer"
	"github.com/roach88/wtqexec/internal/executor"
	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/table"
)

// ExecuteResult is the payload of the execute command.
type ExecuteResult struct {
	Form        string                `json:"form"`
	Denotation  []string              `json:"denotation"`
	Diagnostics []executor.Diagnostic `json:"diagnostics,omitempty"`
}

// NewExecuteCommand creates the execute command.
func NewExecuteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute <table> <logical-form>",
		Short: "Execute a logical form against a table",
		Long: `Execute a logical form against a tagged table and print its denotation.

Operators that run out of rows (first of an empty list, a filter value that
is an empty list) produce an empty denotation and a diagnostic instead of an
error. Diagnostics are logged to stderr.

Example:
  wtqexec execute table.tagged '(count all_rows)'
  wtqexec execute table.tagged '(select_number (first all_rows) number_column:year)' --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExecute(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runExecute(opts *RootOptions, tablePath, form string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	tc, err := readTable(formatter, logger, tablePath, "")
	if err != nil {
		return err
	}

	ex := executor.New(tc, executor.WithLogger(logger))
	v, diags, err := ex.ExecuteWithDiagnostics(form)
	if err != nil {
		return outputExecutionError(formatter, err)
	}

	result := ExecuteResult{
		Form:        form,
		Denotation:  answer.FormatDenotation(v),
		Diagnostics: diags,
	}
	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	printDenotation(formatter, result.Denotation)
	return nil
}

// readTable reads a tagged table, linking entities from question when it
// is not empty.
func readTable(formatter *OutputFormatter, logger *slog.Logger, path, question string) (*table.Context, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, outputError(formatter, ExitCommandError, ErrCodeNotFound, fmt.Sprintf("table not found: %s", path), nil)
	}

	var tokens []table.Token
	if question != "" {
		tokens = table.Tokenize(question)
	}
	tc, err := table.Read(path, tokens, table.WithLogger(logger))
	if err != nil {
		return nil, outputError(formatter, ExitCommandError, ErrCodeTable, fmt.Sprintf("failed to read table %s", path), err)
	}
	formatter.VerboseLog("Read %d rows and %d columns from %s", len(tc.Rows()), len(tc.ColumnNames()), path)
	return tc, nil
}

// outputExecutionError reports a parse or execution failure. Both are
// evaluation failures, not command errors.
func outputExecutionError(formatter *OutputFormatter, err error) error {
	code := ErrCodeExecution
	message := "logical form failed to execute"
	if lf.IsParseError(err) {
		code = ErrCodeParse
		message = "logical form is malformed"
	}
	return outputError(formatter, ExitFailure, code, message, err)
}

func printDenotation(formatter *OutputFormatter, denotation []string) {
	if len(denotation) == 0 {
		fmt.Fprintln(formatter.Writer, "(empty)")
		return
	}
	fmt.Fprintln(formatter.Writer, strings.Join(denotation, "\n"))
}
