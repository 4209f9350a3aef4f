// Package cli defines the Cobra command tree for composer-setup. The root
// command runs the setup wizard; unlink, validate, and version are
// subcommands. Commands delegate to internal packages for the work and only
// handle flags, settings, and I/O wiring.
package cli
