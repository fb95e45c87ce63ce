// Package diary holds the editor state behind the main window: the selected
// date, the text being edited and the status line. It knows nothing about
// terminals; the cli package drives it with plain values.
package diary

import (
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/entries"
)

// StatusDateLayout is how dates appear in status messages.
const StatusDateLayout = "Mon Jan 2 2006"

const (
	StatusReady = "Ready"
	StatusSaved = "Saved successfully!"
)

// Store is the entry storage a Session reads from and writes to.
type Store interface {
	Load(date time.Time) (string, bool)
	Save(date time.Time, text string) error
	Dates() ([]time.Time, error)
}

// Session is the editor for one diary.
//
// Selecting a date replaces the buffer with the stored entry; unsaved edits
// of the previous date are dropped. Nothing is written until Save.
type Session struct {
	store  Store
	date   time.Time
	text   string
	status string
	found  bool
}

func NewSession(store Store) *Session {
	return &Session{store: store, status: StatusReady}
}

// Open selects today's date, the way the diary starts up.
func (s *Session) Open(now time.Time) {
	s.Select(now)
}

// Select makes date current and loads its entry. It reports whether an entry
// existed.
func (s *Session) Select(date time.Time) bool {
	s.date = entries.Day(date)

	text, ok := s.store.Load(s.date)
	s.text = text
	s.found = ok
	if ok {
		s.status = "Loaded entry for: " + s.date.Format(StatusDateLayout)
	} else {
		s.status = "No entry found for: " + s.date.Format(StatusDateLayout)
	}
	return ok
}

// Shift moves the selection by days (negative goes back).
func (s *Session) Shift(days int) bool {
	return s.Select(s.date.AddDate(0, 0, days))
}

// Save writes the buffer as the entry for the selected date.
func (s *Session) Save() error {
	if err := s.store.Save(s.date, s.text); err != nil {
		return err
	}
	s.found = true
	s.status = StatusSaved
	return nil
}

// SetText replaces the buffer.
func (s *Session) SetText(text string) {
	s.text = text
}

// Append adds text to the end of the buffer on a new line.
func (s *Session) Append(text string) {
	if s.text != "" && text != "" {
		s.text += "\n"
	}
	s.text += text
}

func (s *Session) Date() time.Time { return s.date }
func (s *Session) Text() string    { return s.text }
func (s *Session) Status() string  { return s.status }

// HasEntry reports whether the selected date has a stored entry.
func (s *Session) HasEntry() bool { return s.found }
