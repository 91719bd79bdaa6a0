package completions

import (
	"os"
	"path/filepath"
	"sync"
)

const defaultBinary = "brig"

var binary = sync.OnceValues(func() (path, name string) {
	if exe, err := os.Executable(); err == nil {
		// Resolve symlinks to get the real path
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			path = resolved
		} else {
			path = exe
		}
	} else if len(os.Args) > 0 {
		path = os.Args[0]
	}

	if path == "" {
		return defaultBinary, defaultBinary
	}
	return path, filepath.Base(path)
})

// BinaryName returns the name of the running binary, e.g. "brig".
func BinaryName() string {
	_, name := binary()
	return name
}

// BinaryPath returns the full path to the running binary.
func BinaryPath() string {
	path, _ := binary()
	return path
}
