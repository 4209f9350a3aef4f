// Package config resolves wizard settings. Values come from command flags,
// SETUP_* environment variables, an optional .setup.yaml in the project
// directory, and built-in defaults, in that order of precedence.
package config
