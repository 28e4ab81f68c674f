// Package value defines the runtime values produced and consumed by the
// logical-form executor, and the immutable Row they are read from.
//
// Value is a sealed interface. Only String, Number, Date, List, Rows and
// Null implement it, so every operator boundary extracts values with an
// exhaustive type switch instead of deferring checks to an untyped
// representation.
//
// Key design constraints:
//   - Values and Rows are immutable once built; a table's rows are shared
//     read-only across concurrent executions.
//   - Row order is significant: Row.Index is the row's position in the
//     source table, used by ordinal navigation.
//   - Ordering a Date against a non-Date is false, never an error.
package value
