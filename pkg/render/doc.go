// Package render turns a parameterized template plus a substitution map into
// a filled document. The renderer is a pure function: it performs no I/O,
// never logs, and returns structured errors for the caller to present.
package render
