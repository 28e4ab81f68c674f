package table

import "log/slog"

type options struct {
	numberThreshold float64
	dateThreshold   float64
	logger          *slog.Logger
	path            string
}

// Option configures how a Context is built.
type Option func(*options)

// WithNumberThreshold sets the share of annotated cells a column must exceed
// to be typed as a number column. The default 0 types a column as soon as
// one cell carries a number.
func WithNumberThreshold(f float64) Option {
	return func(o *options) { o.numberThreshold = f }
}

// WithDateThreshold is WithNumberThreshold for date columns.
func WithDateThreshold(f float64) Option {
	return func(o *options) { o.dateThreshold = f }
}

// WithLogger sets the logger used while reading. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
