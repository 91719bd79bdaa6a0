package session

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/ui"
	"github.com/footprint-tools/brig/internal/usage"
)

func newTestSession(level int) (*Session, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(domain.User{Name: "alice", Level: level}, ui.NewWriterTo(&buf, ui.WithPagerDisabled())), &buf
}

func TestSession_As(t *testing.T) {
	s, buf := newTestSession(4)
	s.Vars().Set("x", 1)

	bob := s.As(domain.User{Name: "bob", Level: 1})
	require.Equal(t, s.ID, bob.ID)
	require.Equal(t, "bob", bob.Name())
	require.Equal(t, 1, bob.Level())

	_, ok := bob.Vars().Get("x")
	require.False(t, ok, "variables are per user")

	bob.Vars().Set("y", 2)
	back := bob.As(s.User)
	v, ok := back.Vars().Get("x")
	require.True(t, ok)
	require.Equal(t, 1, v)

	bob.Println("hello from bob")
	require.Equal(t, "hello from bob\n", buf.String())
}

func TestVars(t *testing.T) {
	v := NewScopes().For("u")

	require.Equal(t, 5, v.Add("n", 5))
	require.Equal(t, 3, v.Add("n", -2))
	v.Set("a", 1)
	require.Equal(t, []string{"a", "n"}, v.Names())

	require.True(t, v.Unset("a"))
	require.False(t, v.Unset("a"))
	require.Equal(t, []string{"n"}, v.Names())
}

func TestVars_Concurrent(t *testing.T) {
	v := NewScopes().For("u")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Add("count", 1)
		}()
	}
	wg.Wait()

	got, ok := v.Get("count")
	require.True(t, ok)
	require.Equal(t, 50, got)
}

func TestHasLevel(t *testing.T) {
	admin, _ := newTestSession(3)
	guest, _ := newTestSession(0)

	req := HasLevel(3)
	require.True(t, req(admin))
	require.False(t, req(guest))
	require.False(t, req("not a session"))
}

func TestRequire(t *testing.T) {
	guest, _ := newTestSession(0)

	err := Require(guest, 2)
	ue, ok := usage.As(err)
	require.True(t, ok)
	require.Equal(t, usage.ErrPermissionDenied, ue.Kind)

	require.NoError(t, Require(guest, 0))
}

func TestFrom(t *testing.T) {
	s, _ := newTestSession(1)
	d := dispatchers.New()

	var got *Session
	d.Register(dispatchers.Literal("who").Executes(func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		var err error
		got, err = From(c)
		return 0, err
	}))

	_, err := d.ExecuteInput(context.Background(), "who", s)
	require.NoError(t, err)
	require.Same(t, s, got)

	_, err = d.ExecuteInput(context.Background(), "who", 42)
	require.ErrorContains(t, err, "command source is int")
}

func TestSession_QuitIsShared(t *testing.T) {
	s, _ := newTestSession(4)
	other := s.As(domain.User{Name: "bob"})

	require.False(t, s.QuitRequested())
	other.Quit()
	require.True(t, s.QuitRequested())
}
