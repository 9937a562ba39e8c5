package manifest

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads a .env-style file into a substitution map without touching
// the process environment. Missing files are not an error when optional is
// set, so a project-local .env can be picked up opportunistically.
func LoadDotEnv(path string, optional bool) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if optional && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("manifest: env file: %w", err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: parse env file %s: %w", path, err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}
