package kinconfig

import "go.viam.com/relaxedik/logging"

// Option changes how an info file is loaded.
type Option func(*loadOptions)

type loadOptions struct {
	strictArity   bool
	collectErrors bool
	validate      bool
	logger        logging.Logger
}

func newLoadOptions(opts []Option) loadOptions {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Global().Sublogger("kinconfig")
	}
	return o
}

// WithStrictArity rejects limit pairs and vectors that carry more elements than they need.
// By default the extra elements are ignored.
func WithStrictArity() Option {
	return func(o *loadOptions) {
		o.strictArity = true
	}
}

// WithCollectErrors reports every bad field at once instead of stopping at the first.
func WithCollectErrors() Option {
	return func(o *loadOptions) {
		o.collectErrors = true
	}
}

// WithValidation runs Validate on the loaded config and fails the load if it reports anything.
func WithValidation() Option {
	return func(o *loadOptions) {
		o.validate = true
	}
}

// WithLogger sets the logger used while loading.
func WithLogger(logger logging.Logger) Option {
	return func(o *loadOptions) {
		o.logger = logger
	}
}
