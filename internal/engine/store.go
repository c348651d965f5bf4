package engine

import (
	"babynames/internal/models"
)

// FirstYear is the earliest year covered by the dataset.
const FirstYear = 1980

// NameIndex maps a capitalized name to its history in source order.
// Keys are remembered in first-insertion order so iteration is deterministic.
// A NameIndex is never mutated once built.
type NameIndex struct {
	order   []string
	buckets map[string][]models.NameEntry
}

// Len returns the number of distinct names. A nil index is empty.
func (ix *NameIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.order)
}

// Lookup returns the history of name. The name must already be capitalized.
func (ix *NameIndex) Lookup(name string) ([]models.NameEntry, bool) {
	if ix == nil {
		return nil, false
	}
	entries, ok := ix.buckets[name]
	return entries, ok
}

// Names returns the keys in first-insertion order.
func (ix *NameIndex) Names() []string {
	if ix == nil {
		return nil
	}
	out := make([]string, len(ix.order))
	copy(out, ix.order)
	return out
}

// Histories returns every bucket in first-insertion order.
func (ix *NameIndex) Histories() []models.NameHistory {
	out := make([]models.NameHistory, 0, ix.Len())
	for _, name := range ix.Names() {
		out = append(out, models.NameHistory{Name: name, Entries: ix.buckets[name]})
	}
	return out
}

// YearIndex maps a year to its top-ten rows in source order.
type YearIndex struct {
	order   []int
	buckets map[int][]models.TopTenEntry
}

func (ix *YearIndex) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.order)
}

func (ix *YearIndex) Lookup(year int) ([]models.TopTenEntry, bool) {
	if ix == nil {
		return nil, false
	}
	entries, ok := ix.buckets[year]
	return entries, ok
}

// Years returns the keys in first-insertion order.
func (ix *YearIndex) Years() []int {
	if ix == nil {
		return nil
	}
	out := make([]int, len(ix.order))
	copy(out, ix.order)
	return out
}

func (ix *YearIndex) Buckets() []models.YearTopTen {
	out := make([]models.YearTopTen, 0, ix.Len())
	for _, year := range ix.Years() {
		out = append(out, models.YearTopTen{Year: year, Entries: ix.buckets[year]})
	}
	return out
}

// Session is the state produced by one successful load: both indices built
// from the same source plus the dataset's last year. Sessions are replaced
// wholesale, never patched.
type Session struct {
	Names   *NameIndex
	TopTen  *YearIndex
	MaxYear int
}

// NewSession builds both indices from rows.
func NewSession(rows []models.Row, maxYear int) *Session {
	names, topTen := Build(rows)
	return &Session{Names: names, TopTen: topTen, MaxYear: maxYear}
}

// RestoreSession rebuilds a session from previously exported buckets,
// keeping their order. Later duplicates of a key are appended to the first.
func RestoreSession(names []models.NameHistory, years []models.YearTopTen, maxYear int) *Session {
	nix := &NameIndex{buckets: make(map[string][]models.NameEntry, len(names))}
	for _, h := range names {
		if _, ok := nix.buckets[h.Name]; !ok {
			nix.order = append(nix.order, h.Name)
		}
		nix.buckets[h.Name] = append(nix.buckets[h.Name], h.Entries...)
	}

	yix := &YearIndex{buckets: make(map[int][]models.TopTenEntry, len(years))}
	for _, y := range years {
		if _, ok := yix.buckets[y.Year]; !ok {
			yix.order = append(yix.order, y.Year)
		}
		yix.buckets[y.Year] = append(yix.buckets[y.Year], y.Entries...)
	}

	return &Session{Names: nix, TopTen: yix, MaxYear: maxYear}
}

// Empty reports whether the session holds no data at all.
func (s *Session) Empty() bool {
	return s == nil || (s.Names.Len() == 0 && s.TopTen.Len() == 0)
}
