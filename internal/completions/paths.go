package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// bashCompletionScripts are where distributions install bash-completion.
var bashCompletionScripts = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// SourceInstructions returns the line that loads completions into a running shell.
func SourceInstructions(shell Shell) string {
	bin := BinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s script)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// IsBashCompletionInstalled reports whether the bash-completion package is present.
func IsBashCompletionInstalled() bool {
	for _, path := range bashCompletionScripts {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

// AutoInstallPath returns the path where completions can be auto-loaded from.
// Returns empty string if auto-install is not supported for this shell.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := BinaryName()

	switch shell {
	case ShellFish:
		// Fish always auto-loads from this directory
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}
