// Package status composes the account dashboard from the display, permissions,
// activity, hosts, and names packages.
package status
