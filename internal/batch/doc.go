// Package batch scores every candidate logical form of a suite.
//
// Each distinct table file is read once into an immutable table context
// before any worker starts; workers then share it without locking. Jobs,
// one per (example, logical form) pair, fan out over a bounded pool.
// Execution itself has no cancellation, so the per-call timeout is imposed
// from outside: a form that overruns is recorded as timed out and its
// goroutine is left to finish in the background.
//
// Results are returned in input order regardless of completion order, and
// with a fixed run ID generator and clock a report is byte-for-byte
// reproducible.
package batch
