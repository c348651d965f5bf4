package engine

import (
	"sort"

	"babynames/internal/models"
	"github.com/pkg/errors"
)

// TrendSlot is one gender's frequency within a year.
type TrendSlot struct {
	Gender    models.Gender
	Frequency int
}

// TrendView groups one name's history by year. Each year holds at most one
// Boy slot and one Girl slot, in the order they were first seen.
type TrendView map[int][]TrendSlot

// Project builds the TrendView for name. Duplicate rows for the same
// gender and year are ignored after the first.
func Project(names *NameIndex, name string) (TrendView, error) {
	entries, ok := names.Lookup(name)
	if !ok {
		return nil, errors.Wrap(ErrNameNotFound, name)
	}

	view := make(TrendView)
	for _, e := range entries {
		slots := view[e.Year]
		if hasGender(slots, e.Gender) {
			continue
		}
		view[e.Year] = append(slots, TrendSlot{Gender: e.Gender, Frequency: e.Frequency})
	}
	return view, nil
}

func hasGender(slots []TrendSlot, g models.Gender) bool {
	for _, s := range slots {
		if s.Gender == g {
			return true
		}
	}
	return false
}

// Years returns the years present in the view, ascending.
func (v TrendView) Years() []int {
	years := make([]int, 0, len(v))
	for y := range v {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Frequencies returns the boy and girl frequency for year, 0 where absent.
func (v TrendView) Frequencies(year int) (boys, girls int) {
	for _, s := range v[year] {
		switch s.Gender {
		case models.Boy:
			boys = s.Frequency
		case models.Girl:
			girls = s.Frequency
		}
	}
	return boys, girls
}

// Rows flattens the view into one line per present year, ascending.
func (v TrendView) Rows() []models.YearFreq {
	years := v.Years()
	rows := make([]models.YearFreq, 0, len(years))
	for _, y := range years {
		boys, girls := v.Frequencies(y)
		rows = append(rows, models.YearFreq{Year: y, Boys: boys, Girls: girls})
	}
	return rows
}

// Span fills [first, last] with the view's frequencies, 0 where absent.
func (v TrendView) Span(first, last int) (years, boys, girls []int) {
	if last < first {
		return nil, nil, nil
	}
	n := last - first + 1
	years, boys, girls = make([]int, n), make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		years[i] = first + i
		boys[i], girls[i] = v.Frequencies(first + i)
	}
	return years, boys, girls
}
