package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Flag describes one global command-line flag.
type Flag struct {
	Names       []string
	ValueHint   string
	Description string
}

var RootFlags = []Flag{
	{
		Names:       []string{"--help", "-h"},
		Description: "Show help",
	},
	{
		Names:       []string{"--version", "-v"},
		Description: "Show version",
	},
	{
		Names:       []string{"--no-color"},
		Description: "Disable colored output",
	},
	{
		Names:       []string{"--no-pager"},
		Description: "Do not use pager for output",
	},
	{
		Names:       []string{"--pager"},
		ValueHint:   "<cmd>",
		Description: "Use specified pager for this command",
	},
	{
		Names:       []string{"--quiet", "-q"},
		Description: "Discard command output",
	},
	{
		Names:       []string{"--user"},
		ValueHint:   "<name>",
		Description: "Run as this user instead of the configured one",
	},
}

// Flags provides typed access to the global flags given before the command.
type Flags struct {
	raw []string
}

// NewFlags wraps raw flag strings.
func NewFlags(raw []string) *Flags {
	return &Flags{raw: raw}
}

// SplitArgs separates the leading flags from the command words. Flags end
// at the first word not starting with '-' or at "--", so negative numbers
// in the command stay arguments.
func SplitArgs(args []string) (*Flags, []string) {
	for i, a := range args {
		if a == "--" {
			return NewFlags(args[:i]), args[i+1:]
		}
		if !strings.HasPrefix(a, "-") {
			return NewFlags(args[:i]), args[i:]
		}
	}
	return NewFlags(args), nil
}

// Raw returns the underlying flag strings.
func (f *Flags) Raw() []string {
	return f.raw
}

// Has reports whether any of names is present as a boolean flag.
func (f *Flags) Has(names ...string) bool {
	for _, flag := range f.raw {
		for _, name := range names {
			if flag == name {
				return true
			}
		}
	}
	return false
}

// String returns the value of a --flag=value flag, or defaultVal if absent.
func (f *Flags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if value, ok := strings.CutPrefix(flag, prefix); ok {
			return value
		}
	}
	return defaultVal
}

// Int returns the integer value of a flag, or defaultVal if absent or invalid.
func (f *Flags) Int(name string, defaultVal int) int {
	str := f.String(name, "")
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Unknown returns the flags that match no entry of RootFlags.
func (f *Flags) Unknown() []string {
	var out []string
	for _, flag := range f.raw {
		name, _, _ := strings.Cut(flag, "=")
		if !known(name) {
			out = append(out, flag)
		}
	}
	return out
}

func known(name string) bool {
	for _, flag := range RootFlags {
		for _, n := range flag.Names {
			if n == name {
				return true
			}
		}
	}
	return false
}

// PrintFlags writes the flag table shown by --help.
func PrintFlags(w io.Writer) {
	var labels []string
	width := 0
	for _, flag := range RootFlags {
		label := strings.Join(flag.Names, ", ")
		if flag.ValueHint != "" {
			label += "=" + flag.ValueHint
		}
		labels = append(labels, label)
		width = max(width, len(label))
	}

	for i, flag := range RootFlags {
		fmt.Fprintf(w, "  %-*s  %s\n", width, labels[i], flag.Description)
	}
}
