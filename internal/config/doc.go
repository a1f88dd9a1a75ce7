// Package config defines the application configuration structure and
// loads it from environment variables and an optional YAML file using
// viper. All values are validated at startup so misconfiguration fails
// fast instead of surfacing mid-request.
package config
