package readers

import (
	"log/slog"

	"github.com/robert-malhotra/go-rainbow/internal/logging"
)

// DefaultOrder is the spectral order read when none is requested.
const DefaultOrder = 1

// Option configures a reader call.
type Option func(*options)

type options struct {
	logger *slog.Logger
	order  int
	strict bool
	format Format
}

func defaultOptions() *options {
	return &options{
		order: DefaultOrder,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logging.NewComponentLogger(o.logger, "readers")
	return o
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOrder selects the spectral order (SPORDER) to read.
// Orders below 1 are ignored.
func WithOrder(order int) Option {
	return func(o *options) {
		if order >= 1 {
			o.order = order
		}
	}
}

// WithStrictFormat turns header convention mismatches into errors instead
// of warnings.
func WithStrictFormat() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithFormat makes Read use format f instead of detecting it.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}
