package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxCharacters is the default cell width of the package grid.
	DefaultMaxCharacters                     = 14
	minimumMaxCharactersConstant             = 2
	truncationMarkerConstant                 = "+ "
	cellPaddingCharacterConstant             = " "
	gridConfigurationMessageTemplateConstant = "package grid does not fit: width %d with gutter of %d characters leaves no room for %d character columns"
	gridRowWriteErrorTemplateConstant        = "unable to write package grid row: %w"
)

// GridConfigurationError reports a grid geometry that cannot hold a single column.
type GridConfigurationError struct {
	Width         int
	GutterLength  int
	MaxCharacters int
}

// Error describes the rejected geometry.
func (gridError *GridConfigurationError) Error() string {
	return fmt.Sprintf(gridConfigurationMessageTemplateConstant, gridError.Width, gridError.GutterLength, gridError.MaxCharacters)
}

// PackageGrid lays out package names in fixed-width, row-major columns.
type PackageGrid struct {
	Palette       Palette
	Gutter        string
	Width         int
	MaxCharacters int
}

// Columns computes the number of columns that fit the configured width.
func (grid PackageGrid) Columns() (int, error) {
	gutterLength := utf8.RuneCountInString(grid.Gutter)
	if grid.MaxCharacters < minimumMaxCharactersConstant {
		return 0, &GridConfigurationError{Width: grid.Width, GutterLength: gutterLength, MaxCharacters: grid.MaxCharacters}
	}

	columns := floorDivide(grid.Width-2*gutterLength, grid.MaxCharacters)
	if columns <= 0 {
		return 0, &GridConfigurationError{Width: grid.Width, GutterLength: gutterLength, MaxCharacters: grid.MaxCharacters}
	}
	return columns, nil
}

// Rows renders every grid row without a trailing newline.
func (grid PackageGrid) Rows(packageNames []string, red map[string]struct{}, green map[string]struct{}) ([]string, error) {
	columns, columnsError := grid.Columns()
	if columnsError != nil {
		return nil, columnsError
	}

	palette := grid.Palette
	if palette == nil {
		palette = PlainPalette{}
	}

	colors := make([]string, len(packageNames))
	for packageIndex, packageName := range packageNames {
		if _, isGreen := green[packageName]; isGreen {
			colors[packageIndex] = palette.Bold() + palette.Green()
		} else if _, isRed := red[packageName]; isRed {
			colors[packageIndex] = palette.Bold() + palette.Red()
		}
	}

	rowCount := (len(packageNames) + columns - 1) / columns
	rows := make([]string, 0, rowCount)
	for rowIndex := 0; rowIndex < rowCount; rowIndex++ {
		var rowBuilder strings.Builder
		rowBuilder.WriteString(grid.Gutter)
		for columnIndex := 0; columnIndex < columns; columnIndex++ {
			packageIndex := columnIndex + columns*rowIndex
			if packageIndex >= len(packageNames) {
				break
			}
			cellText := truncatePackageName(packageNames[packageIndex], grid.MaxCharacters)
			padding := grid.MaxCharacters - utf8.RuneCountInString(cellText)
			rowBuilder.WriteString(colors[packageIndex])
			rowBuilder.WriteString(cellText)
			rowBuilder.WriteString(palette.Normal())
			rowBuilder.WriteString(strings.Repeat(cellPaddingCharacterConstant, max(padding, 0)))
		}
		rows = append(rows, rowBuilder.String())
	}
	return rows, nil
}

// Print writes every grid row followed by a newline.
func (grid PackageGrid) Print(writer io.Writer, packageNames []string, red map[string]struct{}, green map[string]struct{}) error {
	rows, rowsError := grid.Rows(packageNames, red, green)
	if rowsError != nil {
		return rowsError
	}
	for _, row := range rows {
		if _, writeError := io.WriteString(writer, row+"\n"); writeError != nil {
			return fmt.Errorf(gridRowWriteErrorTemplateConstant, writeError)
		}
	}
	return nil
}

// PrintPackages writes packageNames as a colorized grid; names in green take precedence over red.
func PrintPackages(writer io.Writer, palette Palette, gutter string, width int, packageNames []string, red map[string]struct{}, green map[string]struct{}, maxCharacters int) error {
	grid := PackageGrid{Palette: palette, Gutter: gutter, Width: width, MaxCharacters: maxCharacters}
	return grid.Print(writer, packageNames, red, green)
}

// NameSet converts a list of names into a membership set.
func NameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func truncatePackageName(packageName string, maxCharacters int) string {
	packageRunes := []rune(packageName)
	if len(packageRunes) <= maxCharacters-1 {
		return packageName
	}
	return string(packageRunes[:maxCharacters-2]) + truncationMarkerConstant
}

func floorDivide(dividend int, divisor int) int {
	quotient := dividend / divisor
	if (dividend%divisor != 0) && ((dividend < 0) != (divisor < 0)) {
		quotient--
	}
	return quotient
}
