package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const helpText = "Available commands: show, today, date YYYY-MM-DD, prev [n], next [n], edit, append, save, cal [YYYY-MM], status, exit"

// commander is the command surface the REPL drives. The real App satisfies
// it; tests can provide a lightweight stub.
type commander interface {
	Show(ctx context.Context) error
	Today(ctx context.Context) error
	SelectDate(ctx context.Context, arg string) error
	Shift(ctx context.Context, days int) error
	Edit(ctx context.Context) error
	Append(ctx context.Context) error
	Save(ctx context.Context) error
	Calendar(ctx context.Context, arg string) error
	Status(ctx context.Context) error
}

// runREPL reads a line at a time from reader, parses the first token as the
// command and dispatches to a. Prompts and usage hints go to w. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a commander, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "diary [%s] > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, helpText)

		case "show":
			_ = a.Show(ctx)

		case "today":
			_ = a.Today(ctx)

		case "date":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: date YYYY-MM-DD")
				continue
			}
			_ = a.SelectDate(ctx, args[0])

		case "prev", "next":
			n := 1
			if len(args) > 0 {
				v, convErr := strconv.Atoi(args[0])
				if convErr != nil || v < 1 {
					fmt.Fprintf(w, "Usage: %s [days]\n", cmd)
					continue
				}
				n = v
			}
			if cmd == "prev" {
				n = -n
			}
			_ = a.Shift(ctx, n)

		case "edit":
			_ = a.Edit(ctx)

		case "append":
			_ = a.Append(ctx)

		case "save":
			_ = a.Save(ctx)

		case "cal":
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			_ = a.Calendar(ctx, arg)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
