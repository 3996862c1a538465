package configuration

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/encoding"
	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
	"github.com/mutagen-io/longpath/pkg/logging"
)

// Logging is the logging configuration.
type Logging struct {
	// Level is the log level.
	Level logging.Level `yaml:"level"`
}

// Enumeration is the default enumeration configuration.
type Enumeration struct {
	// Pattern is the default find pattern.
	Pattern string `yaml:"pattern"`
	// ErrorPolicy is the default failure handling policy.
	ErrorPolicy filesystem.ErrorPolicy `yaml:"errorPolicy"`
}

// Output is the output formatting configuration.
type Output struct {
	// HumanReadableSizes indicates whether or not sizes are printed in
	// human-readable units.
	HumanReadableSizes bool `yaml:"humanReadableSizes"`
}

// Configuration is the global YAML configuration object type.
type Configuration struct {
	// Logging is the logging configuration.
	Logging Logging `yaml:"logging"`
	// Enumeration is the enumeration configuration.
	Enumeration Enumeration `yaml:"enumeration"`
	// Output is the output configuration.
	Output Output `yaml:"output"`
}

// Default returns the default configuration.
func Default() *Configuration {
	return &Configuration{
		Logging: Logging{
			Level: logging.LevelWarn,
		},
		Enumeration: Enumeration{
			Pattern:     filesystem.DefaultPattern,
			ErrorPolicy: filesystem.ErrorPolicyPropagate,
		},
		Output: Output{
			HumanReadableSizes: true,
		},
	}
}

// Load loads the configuration file at the specified path on top of the
// defaults. A missing file yields the defaults.
func Load(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := Default()

	// Attempt to load, treating non-existence as an empty configuration.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "unable to load configuration from %s", path)
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", path)
	}

	// Success.
	return result, nil
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	// A nil configuration isn't valid.
	if c == nil {
		return errors.New("nil configuration")
	}

	// Verify the log level.
	if c.Logging.Level > logging.LevelTrace {
		return errors.Errorf("logging.level: unknown level %d", c.Logging.Level)
	}

	// Verify the pattern.
	if c.Enumeration.Pattern == "" {
		return errors.New("enumeration.pattern: empty pattern")
	} else if strings.ContainsAny(c.Enumeration.Pattern, `\/`) {
		return errors.New("enumeration.pattern: pattern contains separator")
	} else if err := paths.ValidateCharacters(c.Enumeration.Pattern); err != nil {
		return errors.Wrap(err, "enumeration.pattern")
	}

	// Verify the error policy.
	if c.Enumeration.ErrorPolicy > filesystem.ErrorPolicySuppress {
		return errors.Errorf("enumeration.errorPolicy: unknown policy %d", c.Enumeration.ErrorPolicy)
	}

	// Success.
	return nil
}
