package names

import (
	"fmt"
	"os/user"
	"strings"
)

const (
	gecosFieldSeparatorConstant            = ","
	currentUserLookupErrorTemplateConstant = "unable to look up current user: %w"
)

// UserLookup resolves the account running the dashboard.
type UserLookup func() (*user.User, error)

// AccountDisplayName derives a display name from the account's GECOS full name, falling back to the login name.
func AccountDisplayName(account *user.User) string {
	if account == nil {
		return ""
	}
	fullName, _, _ := strings.Cut(account.Name, gecosFieldSeparatorConstant)
	fullName = strings.TrimSpace(fullName)
	if len(fullName) == 0 {
		return account.Username
	}
	return RemoveMiddleInitial(fullName)
}

// CurrentDisplayName looks up the current account with lookup, defaulting to user.Current.
func CurrentDisplayName(lookup UserLookup) (string, error) {
	if lookup == nil {
		lookup = user.Current
	}
	account, lookupError := lookup()
	if lookupError != nil {
		return "", fmt.Errorf(currentUserLookupErrorTemplateConstant, lookupError)
	}
	return AccountDisplayName(account), nil
}
