package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophdiary/internal/entries"
)

// ReadEntry unlocks the diary and prints the raw entry for the date given as
// YYYY-MM-DD. A missing entry prints nothing and reports the status on the
// error stream.
func (a *App) ReadEntry(ctx context.Context, arg string) error {
	d, err := entries.ParseDate(arg)
	if err != nil {
		return err
	}
	if ok, err := a.Unlock(ctx); !ok {
		return err
	}

	found := a.session.Select(d)
	a.log.Debug(ctx, "entry loaded", "date", d.Format(entries.DateLayout), "found", found)
	if !found {
		fmt.Fprintln(a.errOut, a.session.Status())
		return nil
	}
	_, err = io.WriteString(a.out, a.session.Text())
	return err
}

// WriteEntry unlocks the diary and stores everything left on the input as
// the entry for the date given as YYYY-MM-DD. When input is piped, its first
// line is taken as the password.
func (a *App) WriteEntry(ctx context.Context, arg string) error {
	d, err := entries.ParseDate(arg)
	if err != nil {
		return err
	}
	if ok, err := a.Unlock(ctx); !ok {
		return err
	}

	text, err := io.ReadAll(a.reader)
	if err != nil {
		return fmt.Errorf("read entry text: %w", err)
	}

	a.session.Select(d)
	a.session.SetText(string(text))
	if err := a.session.Save(); err != nil {
		a.log.Error(ctx, "saving entry failed", "date", d.Format(entries.DateLayout), "err", err)
		return err
	}
	a.log.Info(ctx, "entry saved", "date", d.Format(entries.DateLayout), "bytes", len(text))
	fmt.Fprintln(a.errOut, a.session.Status())
	return nil
}
