package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wtqexec/internal/table"
)

func TestLoadYAML(t *testing.T) {
	suite, err := Load("testdata/suite.yaml")
	require.NoError(t, err)

	assert.Equal(t, "league", suite.Name)
	require.Len(t, suite.Examples, 3)

	ex := suite.Examples[0]
	assert.Equal(t, "nt-1", ex.ID)
	assert.Equal(t, filepath.Join("testdata", "tables", "sample_table.tagged"), ex.Table)
	assert.Equal(t, []string{"6028"}, ex.Targets)
	assert.Len(t, ex.LogicalForms, 2)

	assert.Equal(t, []string{"how", "many", "total", "attendees", "were", "there", "?"}, suite.Examples[1].Tokens)
}

func TestLoadJSONL(t *testing.T) {
	suite, err := Load("testdata/suite.jsonl")
	require.NoError(t, err)

	assert.Equal(t, "suite", suite.Name)
	require.Len(t, suite.Examples, 2)
	assert.Equal(t, "nt-2", suite.Examples[1].ID)
	assert.Equal(t, []string{"(sum all_rows number_column:avg_attendance)", "(count all_rows)"}, suite.Examples[1].LogicalForms)
}

func TestLoadCUE(t *testing.T) {
	suite, err := Load("testdata/suite.cue")
	require.NoError(t, err)

	assert.Equal(t, "league-cue", suite.Name)
	require.Len(t, suite.Examples, 2)
	assert.Equal(t, filepath.Join("testdata", "tables", "games.tagged"), suite.Examples[1].Table)
	assert.Equal(t, []string{"Seattle Sounders"}, suite.Examples[1].Targets)
	assert.Len(t, suite.Examples[1].Tokens, 7)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		line    int
		message string
	}{
		{name: "missing file", path: "testdata/missing.yaml"},
		{name: "unknown extension", path: "testdata/tables/games.tagged", message: "unsupported suite format"},
		{name: "yaml unknown field", path: "testdata/typo.yaml", message: "field target not found"},
		{name: "yaml duplicate id", path: "testdata/duplicate.yaml", message: "duplicate id"},
		{name: "jsonl bad line", path: "testdata/bad_line.jsonl", line: 2},
		{name: "cue closed schema", path: "testdata/invalid_field.cue", message: "logical_form"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.True(t, IsLoadError(err))

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.path, le.Path)
			assert.Equal(t, tt.line, le.Line)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestQuestionTokens(t *testing.T) {
	withTokens := Example{Question: "ignored", Tokens: []string{"a", "b"}}
	assert.Equal(t, []table.Token{{Text: "a"}, {Text: "b"}}, withTokens.QuestionTokens())

	withoutTokens := Example{Question: "How many?"}
	assert.Equal(t, []table.Token{{Text: "how"}, {Text: "many"}, {Text: "?"}}, withoutTokens.QuestionTokens())
}

func TestLoadedTablesAreReadable(t *testing.T) {
	suite, err := Load("testdata/suite.yaml")
	require.NoError(t, err)

	for _, ex := range suite.Examples {
		_, err := table.Read(ex.Table, ex.QuestionTokens())
		assert.NoError(t, err, ex.ID)
	}
}
