// Package packages prints package names as a colorized grid from the CLI.
//
// Names come from positional arguments or a list file; the red and green
// highlight sets come from configuration and are extended by flags.
package packages
