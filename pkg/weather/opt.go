package weather

import (
	"time"

	// Packages
	logrus "github.com/sirupsen/logrus"
	agentic "github.com/vedanth-p/Agentic-AI-playground"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is an option which can be applied to a Service
type Opt func(*opts) error

type opts struct {
	timeout time.Duration
	log     logrus.FieldLogger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultTimeout bounds each outbound call
	DefaultTimeout = 10 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	opts := &opts{
		timeout: DefaultTimeout,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTimeout sets the timeout for each outbound call. A zero value disables
// the per-call timeout.
func WithTimeout(d time.Duration) Opt {
	return func(o *opts) error {
		if d < 0 {
			return agentic.ErrBadParameter.With("timeout must not be negative")
		}
		o.timeout = d
		return nil
	}
}

// WithLogger sets the logger for lookup outcomes
func WithLogger(log logrus.FieldLogger) Opt {
	return func(o *opts) error {
		if log == nil {
			return agentic.ErrBadParameter.With("logger cannot be nil")
		}
		o.log = log
		return nil
	}
}
