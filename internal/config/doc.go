// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, config files, a .env file, environment
// variables and command-line flags). It provides type-safe access to
// settings while keeping configuration details separate from the trainer
// itself.
package config
