package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wtqexec/internal/answer"
	"github.com/roach88/wtqexec/internal/executor"
)

// EvaluateOptions holds flags for the evaluate command.
type EvaluateOptions struct {
	*RootOptions
	Targets []string
}

// EvaluateResult is the payload of the evaluate command.
type EvaluateResult struct {
	Form        string                `json:"form"`
	Targets     []string              `json:"targets"`
	Denotation  []string              `json:"denotation"`
	Correct     bool                  `json:"correct"`
	Diagnostics []executor.Diagnostic `json:"diagnostics,omitempty"`
}

// NewEvaluateCommand creates the evaluate command.
func NewEvaluateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvaluateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evaluate <table> <logical-form>",
		Short: "Check a logical form's denotation against gold answers",
		Long: `Execute a logical form and compare its denotation with the gold answers.

Targets are normalized the way table cells are. Numbers compare by value,
dates by their known components, and strings after answer normalization.
The command exits 1 when the denotation does not match.

Example:
  wtqexec evaluate table.tagged '(count all_rows)' --target 2
  wtqexec evaluate table.tagged '(select_string all_rows string_column:team)' -t Alpha -t Beta`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Targets, "target", "t", nil, "gold answer (repeatable, required)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runEvaluate(opts *EvaluateOptions, tablePath, form string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	tc, err := readTable(formatter, logger, tablePath, "")
	if err != nil {
		return err
	}

	ex := executor.New(tc, executor.WithLogger(logger))
	ev := ex.Evaluate(form, opts.Targets)
	if ev.Err != nil {
		return outputExecutionError(formatter, ev.Err)
	}

	result := EvaluateResult{
		Form:        form,
		Targets:     opts.Targets,
		Denotation:  answer.FormatDenotation(ev.Value),
		Correct:     ev.Correct,
		Diagnostics: ev.Diagnostics,
	}
	if formatter.IsJSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		verdict := "correct"
		if !result.Correct {
			verdict = "incorrect"
		}
		fmt.Fprintln(formatter.Writer, verdict)
		printDenotation(formatter, result.Denotation)
	}

	if !result.Correct {
		return NewExitError(ExitFailure, "denotation does not match targets")
	}
	return nil
}
