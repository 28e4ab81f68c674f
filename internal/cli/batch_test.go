package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wtqexec/internal/testutil"
)

// runBatchCLI runs the batch command with a fixed run ID and clock.
func runBatchCLI(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	cmd := newBatchCommand(&BatchOptions{
		RootOptions: &RootOptions{Format: format},
		IDs:         testutil.NewFixedRunIDGenerator("run-cli"),
		Now:         testutil.NewDeterministicClock().Now,
	})
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestBatch_JSONGolden(t *testing.T) {
	stdout, err := runBatchCLI(t, "json", "--workers", "2", leagueSuite)

	// nt-3's second form names a column the table lacks.
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "batch_json", []byte(stdout))
}

func TestBatch_Text(t *testing.T) {
	stdout, err := runBatchCLI(t, "text", leagueSuite)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 form(s) failed")
	assert.Contains(t, stdout, "UNKNOWN_COLUMN")
	assert.Contains(t, stdout, "seattle_sounders")
	assert.Contains(t, stdout, "run run-cli: 3/3 examples answered (100.0%), 3/6 forms correct, 1 error(s)")
}

func TestBatch_SuiteErrors(t *testing.T) {
	tests := []struct {
		name    string
		suite   string
		errCode string
	}{
		{"missing suite", "testdata/missing.yaml", ErrCodeNotFound},
		{"duplicate ids", "../dataset/testdata/duplicate.yaml", ErrCodeDataset},
		{"unsupported format", "../dataset/testdata/tables/games.tagged", ErrCodeDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, err := runBatchCLI(t, "text", tt.suite)

			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, stdout, "Error ["+tt.errCode+"]")
		})
	}
}

func TestBatch_StoresRunAndRunsListsIt(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	batchOut, err := runBatchCLI(t, "json", "--db", db, leagueSuite)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	stdout, _, err := runCLI(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "run-cli")
	assert.Contains(t, stdout, "league")
	assert.Contains(t, stdout, "3/6")

	// A stored run reads back as the report that was printed.
	stdout, _, err = runCLI(t, "runs", "--db", db, "--format", "json", "run-cli")
	require.NoError(t, err)
	assert.Equal(t, batchOut, stdout)
}

func TestRuns_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, _, err := runCLI(t, "runs", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runBatchCLI(t, "text", "--db", db, leagueSuite)
	require.Error(t, err)

	stdout, _, err := runCLI(t, "runs", "--db", db, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "run not found: no-such-run")
}

func TestRuns_RequiresDatabase(t *testing.T) {
	_, _, err := runCLI(t, "runs")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestBatchCommandUsesRootOptions(t *testing.T) {
	cmd := NewBatchCommand(&RootOptions{Format: "json"})

	assert.Equal(t, "batch <suite>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("timeout"))
}
