// Package configuration provides loading facilities for the YAML-based global
// configuration file and the environment variables that override it.
package configuration
