package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "x", 1)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "x=1\ndone\n", buf.String())
}

func TestWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithQuiet())

	n, err := w.Printf("hidden")
	require.NoError(t, err)
	require.Zero(t, n)
	_, _ = w.Println("hidden")

	require.Empty(t, buf.String())
}

func TestWriter_PagerNonTerminalPrintsDirectly(t *testing.T) {
	var buf bytes.Buffer
	called := false
	w := NewWriterTo(&buf, WithConfigGetter(func(string) (string, bool) {
		called = true
		return "less", true
	}))

	w.Pager("long output\n")
	require.Equal(t, "long output\n", buf.String())
	require.False(t, called, "pager config is only consulted on a terminal")
}

func TestWriter_PagerDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled(), WithPagerOverride("more"))

	w.Pager("text")
	require.Equal(t, "text", buf.String())
}

func TestWriter_IsBypassPager(t *testing.T) {
	w := NewWriterTo(&bytes.Buffer{})
	require.True(t, w.isBypassPager("cat"))
	require.False(t, w.isBypassPager("less"))
}
