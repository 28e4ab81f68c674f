package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/wtqexec/internal/batch"
)

// ReadRun returns a stored run with its results.
// Returns ErrRunNotFound if no run has the ID.
func (s *Store) ReadRun(ctx context.Context, id string) (*batch.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, suite, started_at, finished_at, examples, examples_correct, forms, correct, errors
		FROM runs
		WHERE id = ?
	`, id)

	report, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	report.Results, err = s.ReadResults(ctx, id)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// ListRuns returns run summaries without results, oldest first.
//
// Returns an empty slice (not nil) if no runs are stored.
func (s *Store) ListRuns(ctx context.Context) ([]*batch.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, suite, started_at, finished_at, examples, examples_correct, forms, correct, errors
		FROM runs
		ORDER BY started_at ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []*batch.Report{}
	for rows.Next() {
		report, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadResults returns a run's results in suite order.
//
// Returns an empty slice (not nil) if the run has no results.
func (s *Store) ReadResults(ctx context.Context, runID string) ([]batch.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT example_id, form_index, form, denotation, correct, error_code, error, diagnostics
		FROM results
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []batch.Result{}
	for rows.Next() {
		var (
			res        batch.Result
			denotation string
			diags      string
		)
		if err := rows.Scan(
			&res.ExampleID,
			&res.FormIndex,
			&res.Form,
			&denotation,
			&res.Correct,
			&res.ErrorCode,
			&res.Error,
			&diags,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if res.Denotation, err = unmarshalDenotation(denotation); err != nil {
			return nil, err
		}
		if res.Diagnostics, err = unmarshalDiagnostics(diags); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*batch.Report, error) {
	var (
		report            batch.Report
		started, finished string
	)
	if err := row.Scan(
		&report.RunID,
		&report.Suite,
		&started,
		&finished,
		&report.Examples,
		&report.ExamplesCorrect,
		&report.Forms,
		&report.Correct,
		&report.Errors,
	); err != nil {
		return nil, err
	}

	var err error
	if report.StartedAt, err = parseTime(started); err != nil {
		return nil, err
	}
	if report.FinishedAt, err = parseTime(finished); err != nil {
		return nil, err
	}
	return &report, nil
}
