package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/footprint-tools/brig/internal/app"
	"github.com/footprint-tools/brig/internal/cli"
	"github.com/footprint-tools/brig/internal/console"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/usage"
)

// exitInterrupted is the conventional status for a run ended by SIGINT.
const exitInterrupted = 130

type environment struct {
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
	opts        app.Options
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], environment{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		opts:        app.DefaultOptions(),
	})

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, env environment) int {
	flags, words := cli.SplitArgs(args)

	if unknown := flags.Unknown(); len(unknown) > 0 {
		fmt.Fprintf(env.stderr, "brig: unknown flag %s\n", unknown[0])
		return 2
	}

	if flags.Has("--help", "-h") {
		printUsage(env.stdout)
		return 0
	}

	if flags.Has("--version", "-v") {
		fmt.Fprintf(env.stdout, "brig version %s\n", app.Version)
		return 0
	}

	opts := env.opts
	opts.Out = env.stdout
	// Enable styling if stdout is a terminal and --no-color is not set
	opts.StyleEnabled = env.interactive && !flags.Has("--no-color")
	opts.PagerDisabled = opts.PagerDisabled || flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", opts.PagerOverride)
	opts.Quiet = flags.Has("--quiet", "-q")

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(env.stderr, "brig: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(a) }()

	user, err := app.SessionUser(a, flags.String("--user", ""))
	if err != nil {
		return fail(env.stderr, err, nil, nil)
	}

	d := cli.BuildDispatcher(a, app.CommandEnv(a))

	// Shell completion calls brig on every key press; those runs are not history.
	var history domain.HistoryStore = a.Store
	if len(words) > 0 && words[0] == "complete" {
		history = nil
	}
	runner := cli.NewRunner(d, history, a.Logger)

	if len(words) == 0 {
		if !env.interactive {
			// Exit with non-zero code when there is nothing to run
			_, _ = runner.Run(ctx, "help", session.New(user, a.Output))
			return 1
		}
		if err := console.Run(ctx, runner, user, consoleOptions(a.Config)); err != nil {
			fmt.Fprintf(env.stderr, "brig: %v\n", err)
			return 1
		}
		return 0
	}

	s := session.New(user, a.Output)
	if _, err := runner.Run(ctx, strings.Join(words, " "), s); err != nil {
		return fail(env.stderr, err, d, s)
	}
	return 0
}

// fail prints err and returns the exit code it maps to.
func fail(w io.Writer, err error, d *dispatchers.Dispatcher, source any) int {
	for _, line := range cli.ErrorLines(err, d, source) {
		fmt.Fprintln(w, line)
	}
	return exitCode(err)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: brig [flags] [<command> [<args>]]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command brig opens the interactive console.")
	fmt.Fprintln(w, "Run 'brig help' for the list of commands.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	cli.PrintFlags(w)
}

func consoleOptions(cfg domain.ConfigProvider) console.Options {
	opts := console.DefaultOptions()
	if prompt, ok := cfg.Get("prompt"); ok && prompt != "" {
		opts.Prompt = prompt
	}
	if raw, ok := cfg.Get("suggestions_max"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.MaxSuggestions = n
		}
	}
	return opts
}

func exitCode(err error) int {
	if ue, ok := usage.As(err); ok {
		return ue.GetExitCode()
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	return 1
}
