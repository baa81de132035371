package geometry

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the process-wide knobs of the package. It's normally read from
// a YAML file:
//
//	tolerance: 1e-7
type Config struct {
	Tolerance float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{Tolerance: DefaultTolerance}
}

// LoadConfig decodes a YAML config. Fields that are missing keep their
// defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding geometry config")
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	return c, nil
}

// Apply installs the config for the whole process.
func (c *Config) Apply() error {
	return UseTolerance(c.Tolerance)
}
