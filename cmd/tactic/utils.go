package main

import (
	"os"
	"path/filepath"
	"strings"
)

// mapPath expands environment variables, then resolves ~/ against the
// home directory and ./ against the directory of the executable.
func mapPath(path string) string {
	path = os.ExpandEnv(path)
	var base string
	switch {
	case strings.HasPrefix(path, "~/"):
		var home, err = os.UserHomeDir()
		if err != nil {
			return path
		}
		base = home
	case strings.HasPrefix(path, "./"):
		var exe, err = os.Executable()
		if err != nil {
			return path
		}
		base = filepath.Dir(exe)
	default:
		return path
	}
	return filepath.Join(base, path[2:])
}
