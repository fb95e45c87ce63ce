package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	errColor    = color.New(color.FgRed)
	warnColor   = color.New(color.FgYellow)
	okColor     = color.New(color.FgGreen)
	accentColor = color.New(color.FgCyan)
)

func (a *App) success(msg string) {
	okColor.Fprintln(a.out, msg)
}

func (a *App) warn(msg string) {
	warnColor.Fprintln(a.out, msg)
}

func (a *App) fail(msg string) {
	errColor.Fprintln(a.out, "Error: "+msg)
}

func (a *App) printStatus() {
	accentColor.Fprintln(a.out, a.session.Status())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
