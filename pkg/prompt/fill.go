package prompt

import (
	"context"
	"errors"
	"fmt"
)

// Fill asks for a value for each key, in the order given, and returns the
// collected substitution map. Empty answers are rejected at the prompt so the
// renderer never sees an EmptyValue it could have prevented.
func Fill(ctx context.Context, driver Driver, keys []string) (map[string]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("Value for {%s}:", key),
			Help:      fmt.Sprintf("Replaces every %q placeholder in the template.", key),
			Validator: nonEmpty(key),
		})
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

func nonEmpty(key string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("a value for %q is required", key)
		}
		return nil
	}
}
