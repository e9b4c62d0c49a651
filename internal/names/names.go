package names

import (
	"strings"
	"unicode/utf8"
)

const (
	initialPeriodSuffixConstant    = "."
	nameSeparatorConstant          = " "
	firstInteriorPartIndexConstant = 1
)

// RemoveMiddleInitial drops a middle initial such as "Q" or "Q." from a full name.
//
// Names with two or fewer parts are returned unchanged. Otherwise only the
// first interior part is inspected and the parts are rejoined with single
// spaces whether or not it was removed.
func RemoveMiddleInitial(fullName string) string {
	nameParts := strings.Fields(fullName)
	if len(nameParts) <= 2 {
		return fullName
	}

	// Later interior parts are never examined.
	candidate := nameParts[firstInteriorPartIndexConstant]
	if isInitial(candidate) {
		nameParts = append(nameParts[:firstInteriorPartIndexConstant], nameParts[firstInteriorPartIndexConstant+1:]...)
	}
	return strings.Join(nameParts, nameSeparatorConstant)
}

func isInitial(namePart string) bool {
	runeCount := utf8.RuneCountInString(namePart)
	if runeCount == 1 {
		return true
	}
	return runeCount == 2 && strings.HasSuffix(namePart, initialPeriodSuffixConstant)
}
