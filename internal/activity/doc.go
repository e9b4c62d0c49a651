// Package activity turns path modification times into relative "last active"
// descriptions for home directories and On-Demand applications.
//
// Same-day intervals report hours, then minutes, then seconds; hours and
// minutes are both counted from the seconds elapsed in the current day, so a
// ninety minute gap reads "90 minutes ago".
package activity
