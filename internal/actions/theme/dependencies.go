package theme

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/bmdict/cli/internal/config"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
)

type Deps struct {
	Config     domain.ConfigProvider
	SystemDark theme.SystemSignal
	Apply      func(theme.Theme)
	Logger     domain.Logger
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		Config:     config.NewProvider(),
		SystemDark: termenv.HasDarkBackground,
		Apply:      func(t theme.Theme) { style.Apply(t.String()) },
		Logger:     log.Default(),
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		Themes:     style.Themes,
	}
}

func (d Deps) controller() *theme.Controller {
	return theme.New(
		theme.NewConfigStore(d.Config),
		d.SystemDark,
		theme.WithApply(d.Apply),
		theme.WithLogger(d.Logger),
	)
}
