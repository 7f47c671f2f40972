package selection

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/pkg/log"
)

// Config describes a selection run as a YAML document:
//
//	target: y
//	features: [x1, x2, x3]
//	direction: maximize
//	metric: r2
//	model: ols
//	folds: 5
//	standardize: true
//	verbose: true
//	log_level: info
//
// Metric, Model, Folds and Standardize are read by the evaluator; the selector
// itself uses Target, Features, Direction and Verbose.
type Config struct {
	Target      string     `yaml:"target"`
	Features    []string   `yaml:"features,omitempty"`
	Direction   *Direction `yaml:"direction,omitempty"`
	Metric      string     `yaml:"metric,omitempty"`
	Model       string     `yaml:"model,omitempty"`
	Folds       int        `yaml:"folds,omitempty"`
	Standardize bool       `yaml:"standardize,omitempty"`
	Verbose     bool       `yaml:"verbose,omitempty"`
	LogLevel    string     `yaml:"log_level,omitempty"`
}

// ParseConfigYAML parses a Config from YAML bytes and validates it.
func ParseConfigYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse selection config yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid selection config")
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return ParseConfigYAML(data)
}

// Validate checks the fields the selector depends on.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.NewValidationError("target", "must not be empty", c.Target)
	}
	for i, f := range c.Features {
		if f == "" {
			return errors.NewValidationError(fmt.Sprintf("features[%d]", i), "must not be empty", f)
		}
	}
	if c.Direction != nil && !c.Direction.valid() {
		return errors.NewValidationError("direction", "unknown direction", int(*c.Direction))
	}
	if c.Folds < 0 {
		return errors.NewValidationError("folds", "must not be negative", c.Folds)
	}
	if c.LogLevel != "" {
		if _, ok := log.ParseLevel(c.LogLevel); !ok {
			return errors.NewValidationError("log_level", "expected debug, info, warn or error", c.LogLevel)
		}
	}
	return nil
}

// DirectionOr returns the configured direction, or def when none was given.
func (c *Config) DirectionOr(def Direction) Direction {
	if c.Direction == nil {
		return def
	}
	return *c.Direction
}

// Level returns the configured log level, LevelInfo when unset.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Options converts the config into selector options. def is the direction
// used when the document does not name one; progress lines go to out when
// Verbose is set.
func (c *Config) Options(def Direction, out io.Writer) []Option {
	opts := []Option{WithDirection(c.DirectionOr(def))}
	if c.Verbose && out != nil {
		opts = append(opts, WithVerbose(out))
	}
	return opts
}
