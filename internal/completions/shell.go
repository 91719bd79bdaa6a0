// Package completions generates shell scripts that complete brig command
// lines by asking `brig complete` for suggestions.
package completions

import (
	"os"
	"path/filepath"
)

// Shell is a supported shell name.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
func Shells() []string {
	return []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
}

// Valid reports whether s is a supported shell.
func (s Shell) Valid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	}
	return false
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when the
// shell is unknown or unsupported.
func RunningShell() Shell {
	shell := Shell(filepath.Base(os.Getenv("SHELL")))
	if !shell.Valid() {
		return ""
	}
	return shell
}
