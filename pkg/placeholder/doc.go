// Package placeholder defines the placeholder notation used by parameterized
// documents and scans templates for the names they contain. The Syntax type
// is wrapper-supplied configuration: delimiters and generic-marker names are
// a property of a document set, not of the renderer.
package placeholder
