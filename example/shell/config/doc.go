// Package config loads the user directory example configuration from
// environment variables.
package config
