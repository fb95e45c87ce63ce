package diary

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/entries"
)

// Day is one cell of a month grid. Padding cells have a zero Number.
type Day struct {
	Number   int
	Date     time.Time
	HasEntry bool
	Selected bool
	Today    bool
}

// Month is a calendar page with weeks starting on Monday.
type Month struct {
	Year  int
	Month time.Month
	Weeks [][7]Day
}

// Title returns e.g. "January 2026".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Month builds the calendar page containing anchor, marking days that have
// an entry, the selected date and today.
func (s *Session) Month(anchor, now time.Time) (Month, error) {
	dates, err := s.store.Dates()
	if err != nil {
		return Month{}, err
	}

	marked := make(map[string]bool, len(dates))
	for _, d := range dates {
		marked[d.Format(entries.DateLayout)] = true
	}

	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	days := first.AddDate(0, 1, -1).Day()
	// Monday = 0
	offset := (int(first.Weekday()) + 6) % 7

	m := Month{Year: first.Year(), Month: first.Month()}
	var week [7]Day
	col := offset
	for n := 1; n <= days; n++ {
		d := first.AddDate(0, 0, n-1)
		key := d.Format(entries.DateLayout)
		week[col] = Day{
			Number:   n,
			Date:     d,
			HasEntry: marked[key],
			Selected: !s.date.IsZero() && key == s.date.Format(entries.DateLayout),
			Today:    key == now.Format(entries.DateLayout),
		}
		col++
		if col == 7 {
			m.Weeks = append(m.Weeks, week)
			week = [7]Day{}
			col = 0
		}
	}
	if col > 0 {
		m.Weeks = append(m.Weeks, week)
	}
	return m, nil
}
