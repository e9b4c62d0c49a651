// Package hosts maps login node hostnames to the short names of the clusters they serve.
//
// The host command translates the local or a given hostname and can list the
// whole map as a lipgloss table or a YAML document.
package hosts
