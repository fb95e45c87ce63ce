package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/diary"
	"github.com/fatih/color"
)

const weekHeader = " Mo  Tu  We  Th  Fr  Sa  Su"

var (
	selectedColor = color.New(color.FgCyan, color.Bold)
	todayColor    = color.New(color.Underline)
	entryColor    = color.New(color.FgGreen)
)

// renderMonth prints m as a grid of 4-column cells. Days with an entry carry
// a '*', the selected day is prefixed with '>'.
func renderMonth(w io.Writer, m diary.Month) {
	title := m.Title()
	pad := (len(weekHeader) - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w, strings.Repeat(" ", pad)+title)
	fmt.Fprintln(w, weekHeader)

	for _, week := range m.Weeks {
		var b strings.Builder
		for _, d := range week {
			b.WriteString(renderDay(d))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
	fmt.Fprintln(w, "* entry  > selected")
}

func renderDay(d diary.Day) string {
	if d.Number == 0 {
		return "    "
	}

	prefix, suffix := " ", " "
	if d.Selected {
		prefix = ">"
	}
	if d.HasEntry {
		suffix = "*"
	}

	cell := fmt.Sprintf("%2d", d.Number)
	switch {
	case d.Selected:
		cell = selectedColor.Sprint(cell)
	case d.HasEntry:
		cell = entryColor.Sprint(cell)
	}
	if d.Today {
		cell = todayColor.Sprint(cell)
	}
	return prefix + cell + suffix
}
