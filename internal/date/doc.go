// Package date provides the partial calendar date used by table cells and
// logical forms.
//
// Any of year, month and day may be unknown (Unknown, -1). Ordering between
// partial dates is deliberately non-total: when the components needed to
// decide an order are unknown, both Less and GreaterEqual report false.
//
// This package imports nothing internal.
package date
