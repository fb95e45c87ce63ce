package diary

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/entries"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

type failingStore struct {
	Store
}

func (failingStore) Save(time.Time, string) error {
	return common.ErrIO
}

func newSession() (*Session, *entries.Store) {
	store := entries.NewStore(memfs.New(), "")
	return NewSession(store), store
}

func TestNewSession_Ready(t *testing.T) {
	s, _ := newSession()
	assert.Equal(t, StatusReady, s.Status())
}

func TestOpen_SelectsTodayIgnoringClock(t *testing.T) {
	s, _ := newSession()

	s.Open(time.Date(2026, time.January, 21, 15, 4, 5, 0, time.Local))

	assert.Equal(t, day(2026, time.January, 21), s.Date())
	assert.Equal(t, "No entry found for: Wed Jan 21 2026", s.Status())
	assert.Empty(t, s.Text())
	assert.False(t, s.HasEntry())
}

func TestScenario_TypeSaveSwitchBack(t *testing.T) {
	s, store := newSession()
	jan21 := day(2026, time.January, 21)

	found := s.Select(jan21)
	require.False(t, found)
	assert.Empty(t, s.Text())
	assert.Contains(t, s.Status(), "No entry found")

	s.SetText("Hello")
	require.NoError(t, s.Save())
	assert.Equal(t, StatusSaved, s.Status())

	stored, ok := store.Load(jan21)
	require.True(t, ok)
	assert.Equal(t, "Hello", stored)

	s.Select(day(2026, time.January, 22))
	assert.Empty(t, s.Text())

	found = s.Select(jan21)
	require.True(t, found)
	assert.Equal(t, "Hello", s.Text())
	assert.Equal(t, "Loaded entry for: Wed Jan 21 2026", s.Status())
}

func TestSelect_DiscardsUnsavedEdits(t *testing.T) {
	s, store := newSession()
	jan21 := day(2026, time.January, 21)

	require.NoError(t, store.Save(jan21, "kept"))
	s.Select(jan21)
	s.SetText("unsaved change")

	s.Shift(1)
	s.Shift(-1)

	assert.Equal(t, "kept", s.Text())
}

func TestShift_CrossesMonthAndYear(t *testing.T) {
	s, _ := newSession()

	s.Select(day(2025, time.December, 31))
	s.Shift(1)
	assert.Equal(t, day(2026, time.January, 1), s.Date())

	s.Shift(-1)
	assert.Equal(t, day(2025, time.December, 31), s.Date())
}

func TestSave_EmptyTextIsAnEntry(t *testing.T) {
	s, store := newSession()
	s.Select(day(2026, time.January, 21))

	require.NoError(t, s.Save())

	text, ok := store.Load(day(2026, time.January, 21))
	assert.True(t, ok)
	assert.Empty(t, text)
	assert.True(t, s.HasEntry())
}

func TestSave_ErrorKeepsStatus(t *testing.T) {
	inner, _ := newSession()
	s := NewSession(failingStore{Store: inner.store})
	s.Select(day(2026, time.January, 21))
	before := s.Status()

	err := s.Save()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIO))
	assert.Equal(t, before, s.Status())
}

func TestAppend(t *testing.T) {
	s, _ := newSession()

	s.Append("first")
	s.Append("second")
	assert.Equal(t, "first\nsecond", s.Text())

	s.SetText("")
	s.Append("only")
	assert.Equal(t, "only", s.Text())
}
