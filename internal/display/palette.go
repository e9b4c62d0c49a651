package display

import (
	"github.com/muesli/termenv"
)

const (
	selectGraphicRenditionSuffixConstant = "m"
	redColorCodeConstant                 = "1"
	greenColorCodeConstant               = "2"
	emptyStringConstant                  = ""
)

// Palette exposes the terminal control sequences used to colorize output.
type Palette interface {
	Bold() string
	Red() string
	Green() string
	Normal() string
}

// PlainPalette renders no control sequences.
type PlainPalette struct{}

// Bold returns an empty sequence.
func (PlainPalette) Bold() string { return emptyStringConstant }

// Red returns an empty sequence.
func (PlainPalette) Red() string { return emptyStringConstant }

// Green returns an empty sequence.
func (PlainPalette) Green() string { return emptyStringConstant }

// Normal returns an empty sequence.
func (PlainPalette) Normal() string { return emptyStringConstant }

// TerminalPalette builds control sequences for a termenv color profile.
type TerminalPalette struct {
	profile termenv.Profile
}

// NewTerminalPalette constructs a palette for the provided color profile.
func NewTerminalPalette(profile termenv.Profile) TerminalPalette {
	return TerminalPalette{profile: profile}
}

// DetectPalette selects a palette from the color profile of os.Stdout and the environment.
// It ignores any writer installed with SetOut; inject a PaletteProvider to render for another writer.
func DetectPalette() Palette {
	profile := termenv.EnvColorProfile()
	if profile == termenv.Ascii {
		return PlainPalette{}
	}
	return NewTerminalPalette(profile)
}

// Bold returns the bold sequence.
func (palette TerminalPalette) Bold() string {
	if palette.profile == termenv.Ascii {
		return emptyStringConstant
	}
	return controlSequence(termenv.BoldSeq)
}

// Red returns the red foreground sequence.
func (palette TerminalPalette) Red() string {
	return palette.foreground(redColorCodeConstant)
}

// Green returns the green foreground sequence.
func (palette TerminalPalette) Green() string {
	return palette.foreground(greenColorCodeConstant)
}

// Normal returns the sequence resetting every attribute.
func (palette TerminalPalette) Normal() string {
	if palette.profile == termenv.Ascii {
		return emptyStringConstant
	}
	return controlSequence(termenv.ResetSeq)
}

func (palette TerminalPalette) foreground(colorCode string) string {
	color := palette.profile.Color(colorCode)
	if color == nil {
		return emptyStringConstant
	}
	return controlSequence(color.Sequence(false))
}

func controlSequence(code string) string {
	if len(code) == 0 {
		return emptyStringConstant
	}
	return termenv.CSI + code + selectGraphicRenditionSuffixConstant
}
