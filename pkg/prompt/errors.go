package prompt

import "errors"

// ErrAborted signals the user abandoned the fill flow (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")
