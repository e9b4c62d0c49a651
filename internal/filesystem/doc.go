// Package filesystem abstracts the stat, listing, access and write primitives
// consumed by the dashboard commands so tests can substitute in-memory fakes.
package filesystem
