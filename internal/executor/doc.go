// Package executor evaluates logical forms against the rows of a table.
//
// Evaluation is a pure function of the table rows. An Executor holds no
// mutable state, so one Executor (and the table behind it) can serve any
// number of concurrent Execute calls.
//
// OPERATORS:
//
// Every operator is a member of the closed Op enumeration and carries a
// Signature: the kinds of its parameters and of its result. Arguments are
// checked against the signature before the operator runs; a mismatch is an
// *ExecutionError with code TYPE_MISMATCH, never a silent coercion. The one
// relaxation is that a List may stand in for a scalar parameter, in which
// case its first element is used, so (min_number ...) can feed a filter.
//
// SOFT FAILURES:
//
// Navigating an empty row list (first, last, previous, next) or past either
// end of the table is not an error. The operator returns an empty row list
// and records a Diagnostic, which is also logged as a warning.
package executor
