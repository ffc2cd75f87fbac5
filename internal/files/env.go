package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv overrides the directory relative paths are resolved against.
	HomeEnv = "CALORIES_HOME"
)

// ResolveBasePath determines where calories looks for the diary and writes
// exports, defaulting to the current working directory. The location can be
// overridden by exporting CALORIES_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}
	return os.Getwd()
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
