package display

import (
	"os"

	"golang.org/x/term"
)

// FallbackWidth is used when the terminal width cannot be determined.
const FallbackWidth = 80

// ResolveWidth returns the configured width, or the terminal width of os.Stdout when configuredWidth is not positive.
// Detection never consults a writer installed with SetOut; set a positive width to render for another writer.
func ResolveWidth(configuredWidth int) int {
	if configuredWidth > 0 {
		return configuredWidth
	}
	terminalWidth, _, sizeError := term.GetSize(int(os.Stdout.Fd()))
	if sizeError != nil || terminalWidth <= 0 {
		return FallbackWidth
	}
	return terminalWidth
}
