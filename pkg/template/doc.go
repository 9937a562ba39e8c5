// Package template models parameterized documents as immutable values with a
// Source that records their origin (file, fs.FS entry, or inline string).
// Loading and writing live in pkg/fsio; scanning and substitution live in
// pkg/placeholder and pkg/render.
package template
