package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/brig/internal/config"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
	"github.com/footprint-tools/brig/internal/store"
	"github.com/footprint-tools/brig/internal/ui"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Quiet discards command output.
	Quiet bool

	// Out receives command output; nil means stdout.
	Out io.Writer

	// Style options
	StyleEnabled bool

	// Locations; empty means the platform default.
	ConfigPath   string
	DatabasePath string
	LogPath      string
}

// DefaultOptions returns the default application options.
func DefaultOptions() Options {
	return Options{
		StyleEnabled: true,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		p, err := paths.ConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		configPath = p
	}

	// The logger's own settings live in config, so config is read once
	// without a logger first.
	logger := newLogger(config.NewProvider(configPath, nil), opts.LogPath)
	cfg := config.NewProvider(configPath, logger)

	dbPath := opts.DatabasePath
	if dbPath == "" {
		dbPath = paths.DatabasePath()
	}
	st, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("app: open store: %w", err)
	}

	if err := seedUsers(st, cfg); err != nil {
		_ = st.Close()
		_ = logger.Close()
		return nil, err
	}

	styleConfig, _ := cfg.GetAll()
	style.Init(opts.StyleEnabled, styleConfig)

	// Create output writer with options
	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	if opts.Quiet {
		writerOpts = append(writerOpts, ui.WithQuiet())
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(cfg.Get))

	output := ui.NewWriter(writerOpts...)
	if opts.Out != nil {
		output = ui.NewWriterTo(opts.Out, writerOpts...)
	}

	logger.Info("app: started (config=%s, db=%s)", configPath, dbPath)

	return &domain.Application{
		Store:  st,
		Config: cfg,
		Logger: logger,
		Output: output,
		Styler: style.NewStyler(),
	}, nil
}

func newLogger(cfg domain.ConfigProvider, path string) domain.Logger {
	if enabled, _ := cfg.Get("enable_log"); enabled != "true" {
		return log.NopLogger{}
	}
	if path == "" {
		path = paths.LogFilePath()
	}

	level, _ := cfg.Get("log_level")
	l, err := log.New(path, log.ParseLevel(level))
	if err != nil {
		// Fall back to NopLogger on error
		return log.NopLogger{}
	}
	return l
}

// seedUsers gives a fresh database its first user, the configured one, with
// the highest level.
func seedUsers(st domain.UserStore, cfg domain.ConfigProvider) error {
	existing, err := st.ListUsers()
	if err != nil {
		return fmt.Errorf("app: list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	owner := domain.DefaultUser
	if name, ok := cfg.Get("user"); ok && name != "" {
		owner.Name = name
	}
	if err := st.AddUser(owner); err != nil {
		return fmt.Errorf("app: seed user: %w", err)
	}
	return nil
}

// NewForTesting creates an Application with an in-memory store, NopLogger,
// no styling and the given config.
func NewForTesting(cfg domain.ConfigProvider) (*domain.Application, error) {
	st, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}
	if err := seedUsers(st, cfg); err != nil {
		_ = st.Close()
		return nil, err
	}

	return &domain.Application{
		Store:  st,
		Config: cfg,
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}, nil
}

// SessionUser resolves who commands run as: name when given, otherwise the
// configured user.
func SessionUser(app *domain.Application, name string) (domain.User, error) {
	if name == "" {
		name, _ = app.Config.Get("user")
	}
	if name == "" {
		name = domain.DefaultUser.Name
	}

	u, ok, err := app.Store.GetUser(name)
	if err != nil {
		return domain.User{}, fmt.Errorf("app: look up user %s: %w", name, err)
	}
	if !ok {
		return domain.User{}, usage.UnknownUser(name)
	}
	return u, nil
}

// CommandEnv returns the log location the command tree reads and clears.
func CommandEnv(app *domain.Application) domain.CommandEnv {
	if l, ok := app.Logger.(*log.Logger); ok {
		return domain.CommandEnv{LogPath: l.Path(), TruncateLog: l.Truncate}
	}

	path := paths.LogFilePath()
	return domain.CommandEnv{
		LogPath:     path,
		TruncateLog: func() error { return os.Truncate(path, 0) },
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	var errs []error
	if app.Logger != nil {
		errs = append(errs, app.Logger.Close())
	}
	if app.Store != nil {
		errs = append(errs, app.Store.Close())
	}
	return errors.Join(errs...)
}
