// Package store provides SQLite-backed storage for batch evaluation runs.
//
// The store keeps two tables:
//   - runs: one row per batch run with its counters and timestamps
//   - results: one row per executed logical form, keyed by (run_id, seq)
//
// # Ordering
//
// Results are read back ORDER BY seq ASC, the position of the form in the
// suite, so a stored run compares equal to the report that produced it.
// Runs list ORDER BY started_at ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Denotations and diagnostics are stored as JSON TEXT.
package store
