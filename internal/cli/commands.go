package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/diary"
	"github.com/dmitrijs2005/gophdiary/internal/entries"
)

const monthLayout = "2006-01"

// getMultiline is an indirection used to facilitate testing.
var getMultiline = GetMultiline

// Show prints the selected date and its buffer.
func (a *App) Show(ctx context.Context) error {
	accentColor.Fprintln(a.out, a.session.Date().Format(diary.StatusDateLayout))
	if a.session.Text() == "" {
		a.println("(empty)")
		return nil
	}
	a.println(a.session.Text())
	return nil
}

// Today selects the current date.
func (a *App) Today(ctx context.Context) error {
	a.selectDate(ctx, a.now())
	return nil
}

// SelectDate selects the date given as YYYY-MM-DD.
func (a *App) SelectDate(ctx context.Context, arg string) error {
	d, err := entries.ParseDate(arg)
	if err != nil {
		a.fail(err.Error())
		return err
	}
	a.selectDate(ctx, d)
	return nil
}

// Shift moves the selection by days.
func (a *App) Shift(ctx context.Context, days int) error {
	a.selectDate(ctx, a.session.Date().AddDate(0, 0, days))
	return nil
}

func (a *App) selectDate(ctx context.Context, d time.Time) {
	found := a.session.Select(d)
	a.log.Debug(ctx, "entry loaded", "date", a.session.Date().Format(entries.DateLayout), "found", found)
	a.printStatus()
	if found {
		_ = a.Show(ctx)
	}
}

// Edit replaces the buffer with text typed by the user.
func (a *App) Edit(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Enter the entry for "+a.session.Date().Format(diary.StatusDateLayout), a.out)
	if err != nil {
		a.inputFailed(err)
		return err
	}
	a.session.SetText(text)
	a.println("Buffer replaced, type 'save' to store it.")
	return nil
}

// Append adds text typed by the user to the end of the buffer.
func (a *App) Append(ctx context.Context) error {
	text, err := getMultiline(a.reader, "Add to the entry for "+a.session.Date().Format(diary.StatusDateLayout), a.out)
	if err != nil {
		a.inputFailed(err)
		return err
	}
	a.session.Append(text)
	a.println("Buffer updated, type 'save' to store it.")
	return nil
}

// inputFailed reports an aborted Edit or Append. The buffer is left as it was.
func (a *App) inputFailed(err error) {
	if errors.Is(err, io.EOF) {
		a.warn("Input ended, buffer unchanged.")
		return
	}
	a.fail(err.Error())
}

// Save stores the buffer for the selected date. A failure is reported once
// and not retried.
func (a *App) Save(ctx context.Context) error {
	date := a.session.Date().Format(entries.DateLayout)
	if err := a.session.Save(); err != nil {
		a.fail("File Error: Could not save file!")
		a.log.Error(ctx, "saving entry failed", "date", date, "err", err)
		return err
	}
	a.log.Info(ctx, "entry saved", "date", date, "bytes", len(a.session.Text()))
	a.printStatus()
	return nil
}

// Status prints the status line.
func (a *App) Status(ctx context.Context) error {
	a.printStatus()
	return nil
}

// Calendar prints the month given as YYYY-MM, or the month of the selected
// date when arg is empty.
func (a *App) Calendar(ctx context.Context, arg string) error {
	anchor := a.session.Date()
	if arg != "" {
		m, err := time.ParseInLocation(monthLayout, strings.TrimSpace(arg), time.Local)
		if err != nil {
			err = fmt.Errorf("invalid month %q: expected YYYY-MM", arg)
			a.fail(err.Error())
			return err
		}
		anchor = m
	}
	if anchor.IsZero() {
		anchor = a.now()
	}

	month, err := a.session.Month(anchor, a.now())
	if err != nil {
		a.fail(err.Error())
		a.log.Error(ctx, "listing entries failed", "err", err)
		return err
	}
	renderMonth(a.out, month)
	return nil
}
