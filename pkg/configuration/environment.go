package configuration

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/logging"
)

const (
	// EnvironmentLogLevel overrides Logging.Level.
	EnvironmentLogLevel = "LONGPATH_LOG_LEVEL"
	// EnvironmentErrorPolicy overrides Enumeration.ErrorPolicy.
	EnvironmentErrorPolicy = "LONGPATH_ERROR_POLICY"
	// EnvironmentPattern overrides Enumeration.Pattern.
	EnvironmentPattern = "LONGPATH_PATTERN"
)

// LoadEnvironment loads a "dotenv" environment variable file from disk and
// merges it with the current process' environment, with the process'
// environment taking precedence. A missing file is treated as empty.
func LoadEnvironment(path string) (map[string]string, error) {
	// Load the environment file (if it exists).
	environment, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "unable to load environment file (%s)", path)
	} else if environment == nil {
		environment = make(map[string]string)
	}

	// Add environment variables from the OS.
	for _, specification := range os.Environ() {
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		environment[keyValue[0]] = keyValue[1]
	}

	// Success.
	return environment, nil
}

// Apply applies the overrides present in environment to the configuration and
// validates the result.
func (c *Configuration) Apply(environment map[string]string) error {
	if value, ok := environment[EnvironmentLogLevel]; ok {
		level, ok := logging.NameToLevel(value)
		if !ok {
			return errors.Errorf("%s: unknown log level: %s", EnvironmentLogLevel, value)
		}
		c.Logging.Level = level
	}
	if value, ok := environment[EnvironmentErrorPolicy]; ok {
		policy, ok := filesystem.NameToErrorPolicy(value)
		if !ok {
			return errors.Errorf("%s: unknown error policy: %s", EnvironmentErrorPolicy, value)
		}
		c.Enumeration.ErrorPolicy = policy
	}
	if value, ok := environment[EnvironmentPattern]; ok {
		c.Enumeration.Pattern = value
	}
	return c.EnsureValid()
}
