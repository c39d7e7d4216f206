package actions

import (
	"fmt"
	"runtime"

	"github.com/bmdict/cli/internal/app"
)

type actionDependencies struct {
	Printf   func(format string, a ...any) (n int, err error)
	Version  func() string
	Platform func() string
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:   fmt.Printf,
		Version:  func() string { return app.Version },
		Platform: func() string { return runtime.GOOS + "/" + runtime.GOARCH },
	}
}
