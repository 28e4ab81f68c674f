package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wtqexec/internal/table"
)

// EntitiesResult is the payload of the entities command.
type EntitiesResult struct {
	Question string               `json:"question"`
	Tokens   []string             `json:"tokens"`
	Strings  []table.StringEntity `json:"strings"`
	Numbers  []table.NumberEntity `json:"numbers"`
}

// NewEntitiesCommand creates the entities command.
func NewEntitiesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entities <table> <question>",
		Short: "List question spans linked to a table",
		Long: `Tokenize a question and list the entities it links to in a table.

String entities are question spans whose normalized text occurs in a string
column. Number entities are numeric literals, number words, ordinals and
month names.

Example:
  wtqexec entities table.tagged 'when was the attendance greater than 5000?'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntities(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runEntities(opts *RootOptions, tablePath, question string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	tc, err := readTable(formatter, logger, tablePath, question)
	if err != nil {
		return err
	}

	strs, numbers := tc.EntitiesFromQuestion()
	result := EntitiesResult{
		Question: question,
		Tokens:   tokenTexts(tc.Tokens()),
		Strings:  nonNil(strs),
		Numbers:  nonNil(numbers),
	}
	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	rows := make([][]string, 0, len(strs)+len(numbers))
	for _, e := range strs {
		span := strings.Join(result.Tokens[e.Start:e.End], " ")
		rows = append(rows, []string{e.ID, "string", span, strings.Join(e.Columns, ", ")})
	}
	for _, n := range numbers {
		rows = append(rows, []string{n.Text, "number", result.Tokens[n.Token], strconv.Itoa(n.Token)})
	}
	if len(rows) == 0 {
		fmt.Fprintln(formatter.Writer, "no entities")
		return nil
	}
	formatter.Table([]string{"ENTITY", "KIND", "SPAN", "COLUMNS / TOKEN"}, rows)
	return nil
}

func tokenTexts(tokens []table.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// nonNil keeps empty lists as [] in JSON output.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
