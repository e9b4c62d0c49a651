// Package names normalizes account display names for the dashboard header.
//
// Display names come from the GECOS full name of the account, with the
// middle initial removed, and fall back to the login name.
package names
