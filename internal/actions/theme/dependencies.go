package theme

import (
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(string, string) error
	GetAll     func() (map[string]string, error)
	Apply      func(cfg map[string]string)
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

// NewDeps binds the theme commands to cfg. Apply restyles the running
// process after a theme change.
func NewDeps(cfg domain.ConfigProvider) Deps {
	return Deps{
		Get:        cfg.Get,
		Set:        cfg.Set,
		GetAll:     cfg.GetAll,
		Apply:      func(all map[string]string) { style.Init(style.Enabled(), all) },
		ThemeNames: style.ThemeNames,
		Themes:     style.Themes,
	}
}

// Names lists every name `theme set` accepts: the explicit variants and
// the bases that resolve against the terminal background.
func (d Deps) Names() []string {
	names := make([]string, 0, len(style.BaseThemeNames)+len(d.ThemeNames))
	names = append(names, style.BaseThemeNames...)
	return append(names, d.ThemeNames...)
}
