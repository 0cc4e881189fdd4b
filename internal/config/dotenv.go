package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvLookup consults env first and falls back to the variables of the dotenv
// file at path. Empty environment values fall through to the file. A missing
// file is only an error when the path was given explicitly.
func EnvLookup(path string, explicit bool, env func(string) (string, bool)) (func(string) (string, bool), error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return nil, fmt.Errorf("read env file %s: %w", path, err)
		}
		vars = nil
	}
	return func(key string) (string, bool) {
		if v, ok := env(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}
