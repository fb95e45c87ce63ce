// Package entries maps calendar dates to plain-text diary files.
//
// Each date owns exactly one file, <dir>/YYYY-MM-DD.txt. A missing file means
// the day has no entry yet; it is never reported as an error.
package entries

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/filex"
	"github.com/go-git/go-billy/v5"
)

const (
	// DefaultDir is the directory entries are kept in when none is configured.
	DefaultDir = "data"

	// DateLayout is the on-disk date format of entry file names.
	DateLayout = "2006-01-02"

	fileExt = ".txt"
)

// Store reads and writes diary entries. It caches nothing.
type Store struct {
	fs  billy.Filesystem
	dir string
}

// NewStore returns a Store keeping entries in dir inside fsys. An empty dir
// selects DefaultDir.
func NewStore(fsys billy.Filesystem, dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{fs: fsys, dir: dir}
}

// Dir returns the entry directory inside the filesystem.
func (s *Store) Dir() string {
	return s.dir
}

// PathFor returns the file path of the entry for date. It does no I/O.
func (s *Store) PathFor(date time.Time) string {
	return s.fs.Join(s.dir, date.Format(DateLayout)+fileExt)
}

// Load returns the text of the entry for date. ok is false when the entry
// does not exist or cannot be read.
func (s *Store) Load(date time.Time) (text string, ok bool) {
	b, err := filex.ReadFile(s.fs, s.PathFor(date))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Save writes text as the entire entry for date, creating the directory and
// the file as needed.
func (s *Store) Save(date time.Time, text string) error {
	if err := filex.EnsureDir(s.fs, s.dir); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
	if err := filex.WriteFile(s.fs, s.PathFor(date), []byte(text)); err != nil {
		return fmt.Errorf("%w: save entry %s: %w", common.ErrIO, date.Format(DateLayout), err)
	}
	return nil
}

// Dates lists the days that have an entry file, in ascending order.
// Files whose names are not a valid date are ignored. A missing directory
// yields an empty list.
func (s *Store) Dates() ([]time.Time, error) {
	infos, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if filex.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: list entries: %w", common.ErrIO, err)
	}

	var dates []time.Time
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		name, found := strings.CutSuffix(fi.Name(), fileExt)
		if !found {
			continue
		}
		d, err := ParseDate(name)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
