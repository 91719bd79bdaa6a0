package cli

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/actions/completions"
	configactions "github.com/footprint-tools/brig/internal/actions/config"
	"github.com/footprint-tools/brig/internal/actions/grammar"
	"github.com/footprint-tools/brig/internal/actions/help"
	"github.com/footprint-tools/brig/internal/actions/history"
	"github.com/footprint-tools/brig/internal/actions/logs"
	"github.com/footprint-tools/brig/internal/actions/scripting"
	"github.com/footprint-tools/brig/internal/actions/theme"
	"github.com/footprint-tools/brig/internal/actions/users"
	"github.com/footprint-tools/brig/internal/arguments"
	shells "github.com/footprint-tools/brig/internal/completions"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
	"github.com/footprint-tools/brig/internal/session"
)

// Env carries what the command tree needs beyond the application.
type Env = domain.CommandEnv

// BuildDispatcher registers every console command on a new dispatcher.
func BuildDispatcher(app *domain.Application, env Env) *dispatchers.Dispatcher {
	d := dispatchers.New(dispatchers.WithLogger(app.Logger))

	registerGetStarted(d)
	registerScripting(d)
	registerUsers(d, users.Deps{
		Store:     app.Store,
		Formatter: format.New(app.Config),
		Logger:    app.Logger,
	})
	registerInspect(d, app, env)
	registerConfig(d, app.Config)
	registerSession(d)

	return d
}

func registerGetStarted(d *dispatchers.Dispatcher) {
	deps := help.NewDeps(d)

	d.Register(dispatchers.Literal("help").Executes(help.Overview(deps)).
		Then(dispatchers.Argument(help.CommandArg, arguments.Greedy()).Executes(help.Command(deps))).
		Describe("Show help for a command").
		InCategory(dispatchers.CategoryGetStarted))

	d.Register(dispatchers.Literal("usage").Executes(help.AllUsage(deps)).
		Describe("List every command form you may run").
		InCategory(dispatchers.CategoryGetStarted))

	d.Register(dispatchers.Literal("version").Executes(actions.ShowVersion).
		Describe("Show brig version").
		InCategory(dispatchers.CategoryGetStarted))
}

func registerScripting(d *dispatchers.Dispatcher) {
	d.Register(dispatchers.Literal("echo").
		Then(dispatchers.Argument(scripting.MessageArg, arguments.Greedy()).Executes(scripting.Echo)).
		Describe("Print a message").
		InCategory(dispatchers.CategoryScripting))

	calc := dispatchers.Literal("calc").
		Describe("Integer arithmetic").
		InCategory(dispatchers.CategoryScripting)
	for _, op := range scripting.Operators() {
		calc.Then(dispatchers.Literal(op.Name).
			Then(dispatchers.Argument(scripting.LeftArg, arguments.AnyInteger()).
				Then(dispatchers.Argument(scripting.RightArg, arguments.AnyInteger()).Executes(scripting.Calc(op)))))
	}
	d.Register(calc)

	name := func() *dispatchers.Builder {
		return dispatchers.Argument(scripting.NameArg, arguments.Word()).Suggests(scripting.SuggestVarNames)
	}
	d.Register(dispatchers.Literal("var").
		Then(dispatchers.Literal("set").
			Then(name().Then(dispatchers.Argument(scripting.ValueArg, arguments.AnyInteger()).Executes(scripting.SetVar)))).
		Then(dispatchers.Literal("get").Then(name().Executes(scripting.GetVar))).
		Then(dispatchers.Literal("add").
			Then(name().Then(dispatchers.Argument(scripting.AmountArg, arguments.AnyInteger()).Executes(scripting.AddVar)))).
		Then(dispatchers.Literal("unset").Then(name().Executes(scripting.UnsetVar))).
		Then(dispatchers.Literal("list").Executes(scripting.ListVars)).
		Describe("Manage your integer variables").
		InCategory(dispatchers.CategoryScripting))
}

func registerUsers(d *dispatchers.Dispatcher, deps users.Deps) {
	name := func() *dispatchers.Builder {
		return dispatchers.Argument(users.NameArg, arguments.Word()).Suggests(users.SuggestNames(deps))
	}

	d.Register(dispatchers.Literal("user").
		Then(dispatchers.Literal("add").
			Then(name().Executes(users.Add(deps)).
				Then(dispatchers.Argument(users.LevelArg, users.LevelType()).Executes(users.Add(deps))))).
		Then(dispatchers.Literal("remove").Requires(session.HasLevel(domain.LevelAdmin)).
			Then(name().Executes(users.Remove(deps)))).
		Then(dispatchers.Literal("list").Executes(users.List(deps))).
		Describe("Manage the users commands can run as").
		InCategory(dispatchers.CategoryUsers))

	// execute is registered empty first so its subcommands can redirect back to it.
	execute := d.Register(dispatchers.Literal("execute"))
	d.Register(dispatchers.Literal("execute").
		Then(dispatchers.Literal("run").Redirect(d.Root())).
		Then(dispatchers.Literal("as").Then(name().RedirectWith(execute, users.As(deps)))).
		Then(dispatchers.Literal("everyone").Fork(execute, users.Everyone(deps))).
		Then(dispatchers.Literal("if").
			Then(dispatchers.Literal("level").
				Then(dispatchers.Argument(users.MinLevelArg, users.LevelType()).Fork(execute, users.IfLevel)))).
		Describe("Run a command as other users").
		InCategory(dispatchers.CategoryUsers))
}

func registerInspect(d *dispatchers.Dispatcher, app *domain.Application, env Env) {
	historyDeps := history.NewDeps(app.Store, app.Config)
	limit := func() *dispatchers.Builder {
		return dispatchers.Argument(history.LimitArg, arguments.Integer(1, 1000)).Executes(history.Show(historyDeps))
	}
	d.Register(dispatchers.Literal("history").Executes(history.Show(historyDeps)).
		Then(limit()).
		Then(dispatchers.Literal("user").
			Then(dispatchers.Argument(history.UserArg, arguments.Word()).Executes(history.Show(historyDeps)).
				Then(limit()))).
		Then(dispatchers.Literal("clear").Requires(session.HasLevel(domain.LevelAdmin)).
			Executes(history.Clear(historyDeps))).
		Describe("Show executed command lines").
		InCategory(dispatchers.CategoryInspect))

	grammarDeps := grammar.NewDeps(d)
	d.Register(dispatchers.Literal("complete").Executes(grammar.Complete(grammarDeps)).
		Then(dispatchers.Argument(grammar.TextArg, arguments.Greedy()).Executes(grammar.Complete(grammarDeps))).
		Describe("Print completions for a partial command line").
		InCategory(dispatchers.CategoryInspect))

	d.Register(dispatchers.Literal("ambiguities").Executes(grammar.Ambiguities(grammarDeps)).
		Describe("List commands that accept each other's input").
		InCategory(dispatchers.CategoryInspect))

	logDeps := logs.NewDeps(env.LogPath, env.TruncateLog)
	lines := func(cmd dispatchers.Command) *dispatchers.Builder {
		return dispatchers.Argument(logs.LinesArg, arguments.Integer(1, 10000)).Executes(cmd)
	}
	d.Register(dispatchers.Literal("logs").Executes(logs.View(logDeps)).
		Then(lines(logs.View(logDeps))).
		Then(dispatchers.Literal("json").Executes(logs.JSON(logDeps)).Then(lines(logs.JSON(logDeps)))).
		Then(dispatchers.Literal("tail").Executes(logs.Tail(logDeps))).
		Then(dispatchers.Literal("clear").Requires(session.HasLevel(domain.LevelAdmin)).
			Executes(logs.Clear(logDeps))).
		Describe("Show the log file").
		InCategory(dispatchers.CategoryInspect))
}

func registerConfig(d *dispatchers.Dispatcher, cfg domain.ConfigProvider) {
	deps := configactions.NewDeps(cfg)
	key := func() *dispatchers.Builder {
		return dispatchers.Argument(configactions.KeyArg, arguments.Word()).Suggests(configactions.SuggestKeys)
	}
	admin := session.HasLevel(domain.LevelAdmin)

	d.Register(dispatchers.Literal("config").
		Then(dispatchers.Literal("get").Then(key().Executes(configactions.Get(deps)))).
		Then(dispatchers.Literal("set").Requires(admin).
			Then(key().Then(dispatchers.Argument(configactions.ValueArg, arguments.Greedy()).Executes(configactions.Set(deps))))).
		Then(dispatchers.Literal("unset").Requires(admin).
			Then(key().Executes(configactions.Unset(deps)))).
		Then(dispatchers.Literal("list").Executes(configactions.List(deps))).
		Describe("Read and change configuration").
		InCategory(dispatchers.CategoryConfig))

	themeDeps := theme.NewDeps(cfg)
	d.Register(dispatchers.Literal("theme").
		Then(dispatchers.Literal("list").Executes(theme.List(themeDeps))).
		Then(dispatchers.Literal("set").
			Then(dispatchers.Argument(theme.NameArg, arguments.DynamicChoice(themeDeps.Names)).Executes(theme.Set(themeDeps)))).
		Describe("List and pick color themes").
		InCategory(dispatchers.CategoryTheme))

	completionDeps := completions.DefaultDeps()
	d.Register(dispatchers.Literal("completions").Executes(completions.Instructions(completionDeps)).
		Then(dispatchers.Literal("script").Executes(completions.Script(completionDeps))).
		Then(dispatchers.Argument(completions.ShellArg, arguments.Choice(shells.Shells()...)).
			Executes(completions.Instructions(completionDeps)).
			Then(dispatchers.Literal("script").Executes(completions.Script(completionDeps)))).
		Describe("Set up shell completion").
		InCategory(dispatchers.CategoryConfig))
}

func registerSession(d *dispatchers.Dispatcher) {
	d.Register(dispatchers.Literal("quit").Executes(actions.Quit).
		Describe("Leave the console").
		InCategory(dispatchers.CategorySession))
}
