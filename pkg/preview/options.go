package preview

import "github.com/goliatone/go-formbuilder/internal/log"

// SubmitHandler receives a copy of the accepted values.
type SubmitHandler func(values map[string]string)

// Option configures a Session.
type Option func(*Session)

// WithSubmitHandler sets the callback invoked on a successful submit.
func WithSubmitHandler(fn SubmitHandler) Option {
	return func(s *Session) {
		s.onSubmit = fn
	}
}

// WithLogger overrides the session logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
