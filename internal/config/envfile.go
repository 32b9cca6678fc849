package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Set merges values into the .env file at path, creating it if needed.
// Values are trimmed and lowercased before they are written.
func Set(path string, values map[string]string) error {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		env = map[string]string{}
	} else if err != nil {
		return err
	}
	for k, v := range values {
		env[k] = strings.ToLower(strings.TrimSpace(v))
	}
	return godotenv.Write(env, path)
}

// Read returns the key/value pairs in the .env file at path. A missing file
// reads as empty.
func Read(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	return env, err
}
