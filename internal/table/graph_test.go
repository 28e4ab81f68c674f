package table

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeGraphGolden(t *testing.T) {
	ctx := readFixture(t, "swaras.tagged", "other than m1 how many notations have 1 in them?")

	data, err := json.MarshalIndent(ctx.KnowledgeGraph(), "", "  ")
	require.NoError(t, err)

	// Regenerate with: go test ./internal/table -run TestKnowledgeGraphGolden -update
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "swaras_graph", data)
}

func TestKnowledgeGraphNoUnknownDateWithoutDateColumns(t *testing.T) {
	ctx := readFixture(t, "swaras.tagged", "other than m1 how many notations have 1 in them?")
	kg := ctx.KnowledgeGraph()

	// -1 is not an entity because the table has no date columns.
	assert.False(t, kg.HasEntity("-1"))
	assert.Equal(t, []string{"number_column:notation", "number_column:position"}, kg.Neighbors("1"))
	assert.Empty(t, kg.Neighbors("string_column:swara"))
}

func TestKnowledgeGraphNumbersLinkToNumberAndDateColumns(t *testing.T) {
	ctx := readFixture(t, "sample_table.tagged", "when was the attendance greater than 5000?")
	kg := ctx.KnowledgeGraph()

	assert.ElementsMatch(t, []string{
		"date_column:year", "number_column:year", "string_column:year",
		"number_column:division", "string_column:division",
		"string_column:league", "string_column:regular_season", "number_column:regular_season",
		"string_column:playoffs", "string_column:open_cup", "number_column:open_cup",
		"string_column:avg_attendance", "number_column:avg_attendance",
		"5000", "-1",
	}, kg.Entities())

	assert.Equal(t, []string{"-1", "5000"}, kg.Neighbors("date_column:year"))
	assert.Equal(t, []string{"5000"}, kg.Neighbors("number_column:division"))
	assert.Empty(t, kg.Neighbors("string_column:league"))
	assert.Empty(t, kg.Neighbors("string_column:open_cup"))
	assert.Equal(t, []string{"5000"}, kg.Neighbors("number_column:avg_attendance"))
	assert.Equal(t, []string{
		"date_column:year",
		"number_column:avg_attendance",
		"number_column:division",
		"number_column:open_cup",
		"number_column:regular_season",
		"number_column:year",
	}, kg.Neighbors("5000"))
	assert.Equal(t, []string{"date_column:year"}, kg.Neighbors("-1"))

	text, ok := kg.EntityText("number_column:avg_attendance")
	require.True(t, ok)
	assert.Equal(t, "avg attendance", text)
}

func TestKnowledgeGraphLinksSecondNumberColumns(t *testing.T) {
	ctx := readFixture(t, "games.tagged", "which game had more than 9000 fans?")
	kg := ctx.KnowledgeGraph()

	assert.Equal(t, []string{
		"date_column:date",
		"num2_column:attendance",
		"number_column:attendance",
	}, kg.Neighbors("9000"))
	assert.Equal(t, []string{"9000"}, kg.Neighbors("num2_column:attendance"))
	assert.Equal(t, []string{"date_column:date"}, kg.Neighbors("-1"))
}

func TestKnowledgeGraphIsShared(t *testing.T) {
	ctx := readFixture(t, "games.tagged", "france")
	assert.Same(t, ctx.KnowledgeGraph(), ctx.KnowledgeGraph())
}
