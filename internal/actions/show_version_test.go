package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/testutil"
)

func TestShowVersion_PrintsVersion(t *testing.T) {
	deps := actionDependencies{
		Version: func() string {
			return "1.2.3"
		},
	}

	d := dispatchers.New()
	d.Register(dispatchers.Literal("version").Executes(func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		return showVersion(c, deps)
	}))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, result, err := testutil.Run(t, d, s, buf, "version")
	require.NoError(t, err)
	require.Equal(t, 1, result)
	require.Equal(t, "brig version 1.2.3\n", out)
}

func TestShowVersion_DefaultDeps(t *testing.T) {
	d := dispatchers.New()
	d.Register(dispatchers.Literal("version").Executes(ShowVersion))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	out, _, err := testutil.Run(t, d, s, buf, "version")
	require.NoError(t, err)
	require.Equal(t, "brig version dev\n", out)
}

func TestQuit_SetsFlag(t *testing.T) {
	d := dispatchers.New()
	d.Register(dispatchers.Literal("quit").Executes(Quit))
	s, buf := testutil.NewSession(t, domain.DefaultUser)

	_, result, err := testutil.Run(t, d, s, buf, "quit")
	require.NoError(t, err)
	require.Equal(t, 1, result)
	require.True(t, s.QuitRequested())
}
