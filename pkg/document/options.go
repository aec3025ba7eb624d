package document

import "github.com/google/uuid"

// IDGenerator produces candidate field ids.
type IDGenerator func() string

// NewUUID is the default generator.
func NewUUID() string {
	return uuid.NewString()
}

type addConfig struct {
	generate IDGenerator
	id       string
	options  []string
	hasOpts  bool
}

// FieldOption customises AddField.
type FieldOption func(*addConfig)

// WithIDGenerator overrides the id source for the new field.
func WithIDGenerator(gen IDGenerator) FieldOption {
	return func(c *addConfig) {
		if gen != nil {
			c.generate = gen
		}
	}
}

// WithID requests a specific id. A colliding id falls back to the generator.
func WithID(id string) FieldOption {
	return func(c *addConfig) {
		c.id = id
	}
}

// WithOptions sets the choices of a select field.
func WithOptions(options ...string) FieldOption {
	return func(c *addConfig) {
		c.options = append([]string{}, options...)
		c.hasOpts = true
	}
}
