package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantCmd   []string
	}{
		{
			name:    "no flags",
			args:    []string{"user", "list"},
			wantCmd: []string{"user", "list"},
		},
		{
			name:      "leading flags",
			args:      []string{"--no-color", "--user=alice", "echo", "hi"},
			wantFlags: []string{"--no-color", "--user=alice"},
			wantCmd:   []string{"echo", "hi"},
		},
		{
			name:    "negative numbers stay in the command",
			args:    []string{"calc", "sub", "1", "-5"},
			wantCmd: []string{"calc", "sub", "1", "-5"},
		},
		{
			name:      "double dash ends flags",
			args:      []string{"--quiet", "--", "-x"},
			wantFlags: []string{"--quiet"},
			wantCmd:   []string{"-x"},
		},
		{
			name:      "only flags",
			args:      []string{"--version"},
			wantFlags: []string{"--version"},
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, cmd := SplitArgs(tt.args)
			require.ElementsMatch(t, tt.wantFlags, flags.Raw())
			require.ElementsMatch(t, tt.wantCmd, cmd)
		})
	}
}

func TestFlags_Has(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		check []string
		want  bool
	}{
		{"flag present", []string{"--no-color", "--quiet"}, []string{"--quiet"}, true},
		{"flag not present", []string{"--no-color"}, []string{"--quiet"}, false},
		{"empty flags", nil, []string{"--quiet"}, false},
		{"flag with value not detected as boolean", []string{"--pager=less"}, []string{"--pager"}, false},
		{"any alias matches", []string{"-h"}, []string{"--help", "-h"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewFlags(tt.flags).Has(tt.check...))
		})
	}
}

func TestFlags_String(t *testing.T) {
	tests := []struct {
		name       string
		flags      []string
		flagName   string
		defaultVal string
		want       string
	}{
		{"flag present with value", []string{"--user=alice"}, "--user", "console", "alice"},
		{"flag not present returns default", []string{"--pager=cat"}, "--user", "console", "console"},
		{"empty value", []string{"--user="}, "--user", "console", ""},
		{"value containing equals", []string{"--pager=less -x=4"}, "--pager", "", "less -x=4"},
		{"first occurrence wins", []string{"--user=a", "--user=b"}, "--user", "", "a"},
		{"prefix of another flag is not matched", []string{"--username=x"}, "--user", "none", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewFlags(tt.flags).String(tt.flagName, tt.defaultVal))
		})
	}
}

func TestFlags_Int(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  int
	}{
		{"valid integer", []string{"--limit=5"}, 5},
		{"flag not present returns default", []string{"--other=5"}, 10},
		{"invalid integer returns default", []string{"--limit=abc"}, 10},
		{"float returns default", []string{"--limit=5.5"}, 10},
		{"negative integer", []string{"--limit=-5"}, -5},
		{"zero value", []string{"--limit=0"}, 0},
		{"empty value returns default", []string{"--limit="}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewFlags(tt.flags).Int("--limit", 10))
		})
	}
}

func TestFlags_Unknown(t *testing.T) {
	flags := NewFlags([]string{"--no-color", "--pager=cat", "--bogus", "-x=1"})
	require.Equal(t, []string{"--bogus", "-x=1"}, flags.Unknown())
}

func TestPrintFlags(t *testing.T) {
	var buf bytes.Buffer
	PrintFlags(&buf)

	out := buf.String()
	require.Contains(t, out, "--help, -h")
	require.Contains(t, out, "--pager=<cmd>")
	require.Contains(t, out, "--user=<name>")
	require.Contains(t, out, "Disable colored output")
}
