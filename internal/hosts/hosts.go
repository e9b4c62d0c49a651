package hosts

import (
	"fmt"
	"maps"
	"slices"
)

const (
	unknownHostMessageTemplateConstant = "host %q is not a known cluster login node"
)

var knownHosts = map[string]string{
	"tigercpu.princeton.edu":     "tiger",
	"tigergpu.princeton.edu":     "tiger",
	"della5.princeton.edu":       "della",
	"perseus":                    "perseus",
	"traverse.princeton.edu":     "traverse",
	"adroit4":                    "adroit",
	"tigressdata2.princeton.edu": "tigressdata",
}

// UnknownHostError reports a hostname missing from the cluster map.
type UnknownHostError struct {
	Hostname string
}

// Error describes the unknown hostname.
func (unknownHostError *UnknownHostError) Error() string {
	return fmt.Sprintf(unknownHostMessageTemplateConstant, unknownHostError.Hostname)
}

// ClusterName translates a login node hostname into its cluster short name.
func ClusterName(hostname string) (string, bool) {
	clusterName, known := knownHosts[hostname]
	return clusterName, known
}

// ResolveClusterName translates hostname or returns an UnknownHostError.
func ResolveClusterName(hostname string) (string, error) {
	clusterName, known := ClusterName(hostname)
	if !known {
		return "", &UnknownHostError{Hostname: hostname}
	}
	return clusterName, nil
}

// KnownHosts returns a copy of the hostname to cluster map.
func KnownHosts() map[string]string {
	return maps.Clone(knownHosts)
}

// Hostnames lists the known hostnames in lexical order.
func Hostnames() []string {
	return slices.Sorted(maps.Keys(knownHosts))
}
