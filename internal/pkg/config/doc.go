// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, overridden by CRUD_*
// environment variables and validated before the application wires its
// dependencies.
package config
