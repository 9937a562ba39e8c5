package render

import "fmt"

// MissingKeyError reports a keyed placeholder with no substitution. It is
// fatal in strict mode only; partial mode records the key in
// Result.Unresolved instead.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("render: no substitution for placeholder %q", e.Key)
}

// EmptyValueError reports an empty substitution value. Empty values would
// silently erase required content, so they are rejected in every mode before
// any output is produced.
type EmptyValueError struct {
	Key string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("render: substitution value for %q is empty", e.Key)
}
