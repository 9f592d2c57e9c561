package gen

import "errors"

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets an extra header comment line.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the output package path.
// For example: "model" or "internal/db/model".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !validPackage(pkg) {
			return NewConfigError("Package", pkg, "package must be a path of identifiers")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The package directory is created below it.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithSchemas sets the database schemas to read.
func WithSchemas(schemas ...string) Option {
	return func(c *Config) error {
		if len(schemas) == 0 {
			return NewConfigError("Schemas", nil, "at least one schema is required")
		}
		for _, s := range schemas {
			if s == "" {
				return NewConfigError("Schemas", schemas, "schema names cannot be empty")
			}
		}
		c.Schemas = append([]string(nil), schemas...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options and fills the
// defaults for fields left empty.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
