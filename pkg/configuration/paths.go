package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// ConfigurationName is the name of the global configuration file within
	// the user's home directory.
	ConfigurationName = ".longpath.yml"
	// EnvironmentName is the name of the optional environment variable file
	// within the user's home directory.
	EnvironmentName = ".longpath.env"
)

// homePath computes the path of a file within the user's home directory.
func homePath(name string) (string, error) {
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}
	return filepath.Join(homeDirectoryPath, name), nil
}

// ConfigurationPath returns the path of the YAML-based global configuration
// file. It does not verify that the file exists.
func ConfigurationPath() (string, error) {
	return homePath(ConfigurationName)
}

// EnvironmentPath returns the path of the environment variable file. It does
// not verify that the file exists.
func EnvironmentPath() (string, error) {
	return homePath(EnvironmentName)
}

// LoadGlobal loads the global configuration file and applies the overrides
// from the environment variable file and the process' environment.
func LoadGlobal() (*Configuration, error) {
	configurationPath, err := ConfigurationPath()
	if err != nil {
		return nil, err
	}
	result, err := Load(configurationPath)
	if err != nil {
		return nil, err
	}
	environmentPath, err := EnvironmentPath()
	if err != nil {
		return nil, err
	}
	environment, err := LoadEnvironment(environmentPath)
	if err != nil {
		return nil, err
	} else if err := result.Apply(environment); err != nil {
		return nil, errors.Wrap(err, "invalid environment override")
	}
	return result, nil
}
