package packages

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	commentPrefixConstant         = "#"
	listReadErrorTemplateConstant = "unable to read package list: %w"
)

// ParseNames extracts whitespace-separated package names from reader, ignoring blank lines and lines starting with "#".
func ParseNames(reader io.Reader) ([]string, error) {
	names := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if len(trimmedLine) == 0 || strings.HasPrefix(trimmedLine, commentPrefixConstant) {
			continue
		}
		names = append(names, strings.Fields(trimmedLine)...)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf(listReadErrorTemplateConstant, scanError)
	}
	return names, nil
}
