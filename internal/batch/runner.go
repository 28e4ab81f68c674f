package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/roach88/wtqexec/internal/answer"
	"github.com/roach88/wtqexec/internal/dataset"
	"github.com/roach88/wtqexec/internal/executor"
	"github.com/roach88/wtqexec/internal/lf"
	"github.com/roach88/wtqexec/internal/table"
)

// Runner evaluates suites. The zero value is usable: it runs one worker
// per CPU with no timeout and logs to slog.Default().
type Runner struct {
	// Workers bounds concurrent executions. Zero or less means GOMAXPROCS.
	Workers int

	// Timeout bounds each execution. Zero means no limit.
	Timeout time.Duration

	Logger *slog.Logger

	// IDs generates the run ID. Defaults to UUIDv7Generator.
	IDs RunIDGenerator

	// Now reads the clock for report timestamps. Defaults to time.Now.
	Now func() time.Time

	// TableOptions are passed to table.Read.
	TableOptions []table.Option

	// evaluate replaces Executor.Evaluate in tests.
	evaluate func(ex *executor.Executor, form string, targets []string) executor.Evaluation
}

type job struct {
	index   int
	example dataset.Example
	form    int
	exec    *executor.Executor
	err     error
}

// Run executes every logical form in suite. When ctx is canceled the
// remaining jobs are recorded as canceled and ctx's error is returned with
// the partial report.
func (r *Runner) Run(ctx context.Context, suite *dataset.Suite) (*Report, error) {
	logger := r.logger()
	now := r.Now
	if now == nil {
		now = time.Now
	}
	ids := r.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}

	report := &Report{
		RunID:     ids.Generate(),
		Suite:     suite.Name,
		StartedAt: now().UTC(),
		Examples:  len(suite.Examples),
	}

	jobs := r.plan(suite, logger)
	report.Results = make([]Result, len(jobs))

	workers := r.workers()
	logger.Info("batch run starting",
		"run_id", report.RunID,
		"suite", suite.Name,
		"examples", len(suite.Examples),
		"forms", len(jobs),
		"workers", workers,
	)

	queue := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				report.Results[j.index] = r.runJob(ctx, j, logger)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(jobs); next++ {
		select {
		case queue <- jobs[next]:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()

	for i := next; i < len(jobs); i++ {
		report.Results[i] = failed(jobs[i], CodeCanceled, ctx.Err())
	}

	report.FinishedAt = now().UTC()
	report.summarize()
	logger.Info("batch run finished",
		"run_id", report.RunID,
		"forms", report.Forms,
		"correct", report.Correct,
		"errors", report.Errors,
		"accuracy", report.Accuracy(),
	)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("batch run %s: %w", report.RunID, err)
	}
	return report, nil
}

// plan reads each distinct table once and expands examples into jobs in
// input order.
func (r *Runner) plan(suite *dataset.Suite, logger *slog.Logger) []job {
	type loaded struct {
		exec *executor.Executor
		err  error
	}
	tables := make(map[string]loaded)

	var jobs []job
	for _, ex := range suite.Examples {
		t, ok := tables[ex.Table]
		if !ok {
			ctx, err := table.Read(ex.Table, nil, r.TableOptions...)
			if err != nil {
				logger.Warn("table read failed", "table", ex.Table, "error", err)
				t = loaded{err: err}
			} else {
				t = loaded{exec: executor.New(ctx, executor.WithLogger(logger))}
			}
			tables[ex.Table] = t
		}
		for i := range ex.LogicalForms {
			jobs = append(jobs, job{index: len(jobs), example: ex, form: i, exec: t.exec, err: t.err})
		}
	}
	return jobs
}

func (r *Runner) runJob(ctx context.Context, j job, logger *slog.Logger) Result {
	if j.err != nil {
		return failed(j, CodeTable, j.err)
	}
	if err := ctx.Err(); err != nil {
		return failed(j, CodeCanceled, err)
	}

	form := j.example.LogicalForms[j.form]
	callCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	evaluate := r.evaluate
	if evaluate == nil {
		evaluate = (*executor.Executor).Evaluate
	}
	done := make(chan executor.Evaluation, 1)
	go func() {
		done <- evaluate(j.exec, form, j.example.Targets)
	}()

	select {
	case ev := <-done:
		res := Result{
			ExampleID:   j.example.ID,
			FormIndex:   j.form,
			Form:        form,
			Correct:     ev.Correct,
			Diagnostics: ev.Diagnostics,
		}
		if ev.Err != nil {
			res.ErrorCode = errorCode(ev.Err)
			res.Error = ev.Err.Error()
		} else {
			res.Denotation = answer.FormatDenotation(ev.Value)
		}
		logger.Debug("form evaluated",
			"example", j.example.ID,
			"form_index", j.form,
			"correct", res.Correct,
			"error_code", res.ErrorCode,
		)
		return res
	case <-callCtx.Done():
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			logger.Warn("form timed out", "example", j.example.ID, "form_index", j.form, "timeout", r.Timeout)
			return failed(j, CodeTimeout, callCtx.Err())
		}
		return failed(j, CodeCanceled, ctx.Err())
	}
}

func failed(j job, code string, err error) Result {
	res := Result{
		ExampleID: j.example.ID,
		FormIndex: j.form,
		Form:      j.example.LogicalForms[j.form],
		ErrorCode: code,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

func errorCode(err error) string {
	if lf.IsParseError(err) {
		return CodeParse
	}
	if code := executor.CodeOf(err); code != "" {
		return string(code)
	}
	return "ERROR"
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
