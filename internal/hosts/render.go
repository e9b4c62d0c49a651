package hosts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	hostnameHeaderConstant           = "HOSTNAME"
	clusterHeaderConstant            = "CLUSTER"
	tableCellPaddingConstant         = 1
	borderColorConstant              = "8"
	renderWriteErrorTemplateConstant = "unable to write host map: %w"
	yamlEncodeErrorTemplateConstant  = "unable to encode host map: %w"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, tableCellPaddingConstant)
	rowStyle    = lipgloss.NewStyle().Padding(0, tableCellPaddingConstant)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorConstant))
)

// Entry pairs a login node hostname with its cluster.
type Entry struct {
	Hostname string `yaml:"hostname"`
	Cluster  string `yaml:"cluster"`
}

type entryDocument struct {
	Hosts []Entry `yaml:"hosts"`
}

// Entries lists every known host ordered by hostname.
func Entries() []Entry {
	hostnames := Hostnames()
	entries := make([]Entry, 0, len(hostnames))
	for _, hostname := range hostnames {
		entries = append(entries, Entry{Hostname: hostname, Cluster: knownHosts[hostname]})
	}
	return entries
}

// RenderTable draws entries as a bordered table.
func RenderTable(writer io.Writer, entries []Entry) error {
	hostTable := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle
		}).
		Headers(hostnameHeaderConstant, clusterHeaderConstant)

	for _, entry := range entries {
		hostTable.Row(entry.Hostname, entry.Cluster)
	}

	if _, writeError := fmt.Fprintln(writer, hostTable.Render()); writeError != nil {
		return fmt.Errorf(renderWriteErrorTemplateConstant, writeError)
	}
	return nil
}

// RenderYAML encodes entries as a YAML document under a "hosts" key.
func RenderYAML(writer io.Writer, entries []Entry) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if encodeError := encoder.Encode(entryDocument{Hosts: entries}); encodeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(yamlEncodeErrorTemplateConstant, closeError)
	}
	return nil
}
