package names_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/panes/internal/names"
)

func TestRemoveMiddleInitial(testInstance *testing.T) {
	testCases := []struct {
		name         string
		fullName     string
		expectedName string
	}{
		{name: "initial_with_period", fullName: "John Q. Public", expectedName: "John Public"},
		{name: "initial_without_period", fullName: "John Q Public", expectedName: "John Public"},
		{name: "two_parts_unchanged", fullName: "John Public", expectedName: "John Public"},
		{name: "two_parts_keep_spacing", fullName: "  John   Public ", expectedName: "  John   Public "},
		{name: "single_part_unchanged", fullName: "Cher", expectedName: "Cher"},
		{name: "full_middle_name_kept", fullName: "John Quincy Adams Public", expectedName: "John Quincy Adams Public"},
		{name: "only_first_interior_part_inspected", fullName: "Mary Ann B. Smith", expectedName: "Mary Ann B. Smith"},
		{name: "first_of_two_initials_removed", fullName: "Mary A. B. Smith", expectedName: "Mary B. Smith"},
		{name: "spacing_normalized", fullName: "Ada  L.   Lovelace", expectedName: "Ada Lovelace"},
		{name: "spacing_normalized_without_removal", fullName: "Ada  Lee   Lovelace", expectedName: "Ada Lee Lovelace"},
		{name: "two_rune_without_period_kept", fullName: "Jo Ed Smith", expectedName: "Jo Ed Smith"},
		{name: "multibyte_initial", fullName: "Zoë É. Dupont", expectedName: "Zoë Dupont"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedName, names.RemoveMiddleInitial(testCase.fullName))
		})
	}
}
