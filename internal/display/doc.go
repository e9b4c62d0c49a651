// Package display renders fixed-width dashboard text.
//
// It provides the section divider, the row-major package grid with red and
// green highlighting, and the Palette abstraction that supplies terminal
// control sequences independently of any particular terminal library.
package display
