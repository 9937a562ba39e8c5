package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromPairs builds a substitution map from "key=value" strings, the shape the
// CLI's repeatable --set flag produces. Duplicate keys within one invocation
// are a caller mistake and rejected; use Merge for deliberate layering.
func FromPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("manifest: %q is not key=value", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("manifest: %q has an empty key", pair)
		}
		if _, exists := values[key]; exists {
			return nil, fmt.Errorf("manifest: key %q set twice", key)
		}
		values[key] = value
	}
	return values, nil
}

// LoadYAML reads a flat string-to-string values file. Nested structures are
// rejected: placeholder keys are plain names, so the file format stays a
// one-level map.
func LoadYAML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read values file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case bool, int, int64, uint64, float64:
			values[key] = fmt.Sprintf("%v", v)
		case nil:
			values[key] = ""
		default:
			return nil, fmt.Errorf("manifest: %s: key %q is not a scalar (values files must be flat)", path, key)
		}
	}
	return values, nil
}

// FromEnv collects environment variables carrying the given prefix, mapping
// e.g. DOCFILL_PROJECT=Acme to PROJECT=Acme for prefix "DOCFILL_". An empty
// prefix returns nothing rather than the entire environment.
func FromEnv(prefix string) map[string]string {
	if prefix == "" {
		return nil
	}

	var values map[string]string
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if name == "" {
			continue
		}
		if values == nil {
			values = make(map[string]string)
		}
		values[name] = value
	}
	return values
}

// Merge layers maps left to right, later layers winning. Nil layers are
// skipped; the result is never nil so callers can index it directly.
func Merge(layers ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}
