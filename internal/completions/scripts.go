package completions

import (
	"fmt"
	"io"
	"strings"
)

const bashTemplate = `# bash completion for {{bin}}
_{{fn}}_complete() {
    local line="${COMP_LINE:0:COMP_POINT}"
    if [[ "$line" == *[[:space:]]* ]]; then
        line="${line#*[[:space:]]}"
    else
        line=""
    fi
    local IFS=$'\n'
    COMPREPLY=($(command {{bin}} complete ${line:+"$line"} 2>/dev/null))
}
complete -o nospace -F _{{fn}}_complete {{bin}}
`

const zshTemplate = `#compdef {{bin}}
_{{fn}}() {
    local line=""
    if [[ "$LBUFFER" == *[[:space:]]* ]]; then
        line="${LBUFFER#*[[:space:]]}"
    fi
    local -a candidates
    candidates=("${(@f)$(command {{bin}} complete ${line:+"$line"} 2>/dev/null)}")
    compadd -Q -S '' -- "${candidates[@]}"
}
compdef _{{fn}} {{bin}}
`

const fishTemplate = `# fish completion for {{bin}}
function __{{fn}}_complete
    set -l line (string replace -r '^\S+\s*' '' -- (commandline -cp))
    if test -n "$line"
        command {{bin}} complete "$line" 2>/dev/null
    else
        command {{bin}} complete 2>/dev/null
    end
end
complete -c {{bin}} -f -a '(__{{fn}}_complete)'
`

// Script returns the completion script of shell for the binary named bin.
func Script(shell Shell, bin string) (string, error) {
	var tmpl string
	switch shell {
	case ShellBash:
		tmpl = bashTemplate
	case ShellZsh:
		tmpl = zshTemplate
	case ShellFish:
		tmpl = fishTemplate
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}

	r := strings.NewReplacer("{{bin}}", bin, "{{fn}}", functionName(bin))
	return r.Replace(tmpl), nil
}

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, shell Shell) error {
	script, err := Script(shell, BinaryName())
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, script)
	return err
}

// functionName turns a binary name into a shell identifier.
func functionName(bin string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, bin)
}
