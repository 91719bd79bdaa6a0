package completions

import (
	"context"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/completions"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/usage"
)

// ShellArg is the name of the shell argument.
const ShellArg = "shell"

type Deps struct {
	RunningShell    func() completions.Shell
	Script          func(completions.Shell) (string, error)
	Instructions    func(completions.Shell) string
	RcFile          func(completions.Shell) string
	AutoInstallPath func(completions.Shell) string
	BinaryName      func() string
}

func DefaultDeps() Deps {
	return Deps{
		RunningShell: completions.RunningShell,
		Script: func(shell completions.Shell) (string, error) {
			return completions.Script(shell, completions.BinaryName())
		},
		Instructions:    completions.SourceInstructions,
		RcFile:          completions.RcFile,
		AutoInstallPath: completions.AutoInstallPath,
		BinaryName:      completions.BinaryName,
	}
}

// Instructions shows how to install completions for a shell.
func Instructions(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, shell, err := resolveShell(c, deps)
		if err != nil {
			return 0, err
		}
		printInstructions(s, shell, deps)
		return 1, nil
	}
}

// Script prints the completion script for a shell.
func Script(deps Deps) dispatchers.Command {
	return func(_ context.Context, c *dispatchers.CommandContext) (int, error) {
		s, shell, err := resolveShell(c, deps)
		if err != nil {
			return 0, err
		}
		script, err := deps.Script(shell)
		if err != nil {
			return 0, err
		}
		s.Printf("%s", script)
		return 1, nil
	}
}

func resolveShell(c *dispatchers.CommandContext, deps Deps) (*session.Session, completions.Shell, error) {
	s, err := session.From(c)
	if err != nil {
		return nil, "", err
	}

	if c.HasArgument(ShellArg) {
		name, err := arguments.GetString(c, ShellArg)
		if err != nil {
			return nil, "", err
		}
		return s, completions.Shell(name), nil
	}

	shell := deps.RunningShell()
	if shell == "" {
		return nil, "", usage.CommandFailed("could not detect shell, specify one: completions <bash|zsh|fish>")
	}
	return s, shell, nil
}

func printInstructions(s *session.Session, shell completions.Shell, deps Deps) {
	bin := deps.BinaryName()

	s.Println("To enable completions, choose one of the following:")
	s.Println()

	optionNum := 1

	if autoPath := deps.AutoInstallPath(shell); autoPath != "" {
		s.Printf("%d. Write to auto-load directory:\n", optionNum)
		s.Printf("   %s completions %s script > %s\n", bin, shell, autoPath)
		s.Println()
		optionNum++
	}

	s.Printf("%d. Add to %s:\n", optionNum, deps.RcFile(shell))
	s.Printf("   %s\n", deps.Instructions(shell))
	s.Println()

	s.Println("Then restart your shell or run: exec $SHELL")
}
