package store

import (
	"context"
	"fmt"

	"github.com/roach88/wtqexec/internal/batch"
)

// WriteRun stores a report and all of its results in one transaction.
// Writing a run ID that already exists replaces the stored run.
func (s *Store) WriteRun(ctx context.Context, report *batch.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	// Cascades to the run's results.
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, report.RunID); err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, suite, started_at, finished_at, examples, examples_correct, forms, correct, errors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.RunID,
		report.Suite,
		formatTime(report.StartedAt),
		formatTime(report.FinishedAt),
		report.Examples,
		report.ExamplesCorrect,
		report.Forms,
		report.Correct,
		report.Errors,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results
		(run_id, seq, example_id, form_index, form, denotation, correct, error_code, error, diagnostics)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run: prepare results: %w", err)
	}
	defer stmt.Close()

	for seq, res := range report.Results {
		denotation, err := marshalDenotation(res.Denotation)
		if err != nil {
			return fmt.Errorf("write run: result %d: %w", seq, err)
		}
		diags, err := marshalDiagnostics(res.Diagnostics)
		if err != nil {
			return fmt.Errorf("write run: result %d: %w", seq, err)
		}
		_, err = stmt.ExecContext(ctx,
			report.RunID,
			seq,
			res.ExampleID,
			res.FormIndex,
			res.Form,
			denotation,
			res.Correct,
			res.ErrorCode,
			res.Error,
			diags,
		)
		if err != nil {
			return fmt.Errorf("write run: result %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

// DeleteRun removes a run and its results. Deleting a missing run is not
// an error.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}
