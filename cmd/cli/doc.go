// Package cli constructs the panes command-line interface, wiring the Cobra
// command hierarchy, the configuration loader, and structured logging. It
// exposes helpers to build application instances and to execute the default
// command set.
package cli
