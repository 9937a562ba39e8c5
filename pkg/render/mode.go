package render

import "fmt"

// Mode selects how the renderer treats keyed placeholders that have no
// substitution.
type Mode int

const (
	// ModeStrict fails the render on the first unresolved keyed placeholder.
	ModeStrict Mode = iota
	// ModePartial leaves unresolved keyed placeholders verbatim in the
	// output and records their keys in Result.Unresolved.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModePartial:
		return "partial"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps the CLI spelling of a mode onto its value.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "strict":
		return ModeStrict, nil
	case "partial":
		return ModePartial, nil
	default:
		return ModeStrict, fmt.Errorf("render: unknown mode %q (want strict or partial)", raw)
	}
}
