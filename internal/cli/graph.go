package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <table> <question>",
		Short: "Print the knowledge graph of a question and table",
		Long: `Build the knowledge graph over a table's columns and the entities a
question links to, and print each entity with its neighbors.

String entities link to the columns they occur in. Numbers link to number
and date columns whose values exceed the configured threshold of matches.

Example:
  wtqexec graph table.tagged 'how many games had more than 9000 fans?' --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runGraph(opts *RootOptions, tablePath, question string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	tc, err := readTable(formatter, logger, tablePath, question)
	if err != nil {
		return err
	}

	kg := tc.KnowledgeGraph()
	if formatter.IsJSON() {
		return formatter.Success(kg)
	}

	entities := kg.Entities()
	rows := make([][]string, 0, len(entities))
	for _, id := range entities {
		text, _ := kg.EntityText(id)
		rows = append(rows, []string{id, text, strings.Join(kg.Neighbors(id), ", ")})
	}
	formatter.Table([]string{"ENTITY", "TEXT", "NEIGHBORS"}, rows)
	return nil
}
