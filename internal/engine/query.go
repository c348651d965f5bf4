package engine

import (
	"fmt"
	"strings"

	"babynames/internal/models"
	"github.com/pkg/errors"
)

const wildcard = "*"

// ExactSearch returns the per-year boy and girl frequencies of query,
// covering only the years the name was recorded.
func ExactSearch(names *NameIndex, lastYear int, query string) (models.ExactResult, error) {
	name := Capitalize(query)
	result := models.ExactResult{Name: name}

	if names.Len() == 0 {
		return result, ErrEmptyDataset
	}
	if _, ok := names.Lookup(name); !ok {
		return result, notFound(name, lastYear)
	}

	view, err := Project(names, name)
	if err != nil {
		return result, err
	}
	result.Rows = view.Rows()
	return result, nil
}

// WildcardSearch returns every indexed name matching pattern, with its full
// trend, in index order. Matching is case-insensitive.
//
// The position of "*" selects the match:
//
//	"franc*"  prefix
//	"*elly"   suffix
//	"moh*had" prefix and suffix
//
// A trailing "*" is checked first, so "*an*" is a prefix search for "an".
// No match is an empty result, not an error.
func WildcardSearch(names *NameIndex, pattern string) ([]models.NameTrend, error) {
	if names.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	match, err := compilePattern(strings.TrimSpace(pattern))
	if err != nil {
		return nil, err
	}

	var out []models.NameTrend
	for _, name := range names.Names() {
		if !match(lowerCase(name)) {
			continue
		}
		view, err := Project(names, name)
		if err != nil {
			return nil, err
		}
		out = append(out, models.NameTrend{Name: name, Rows: view.Rows()})
	}
	return out, nil
}

// compilePattern returns a predicate over lower-cased names.
func compilePattern(pattern string) (func(string) bool, error) {
	p := lowerCase(pattern)

	switch {
	case !strings.Contains(p, wildcard):
		return nil, errors.Wrapf(ErrInvalidPattern, "%q has no %s", pattern, wildcard)

	case strings.HasSuffix(p, wildcard):
		prefix := strings.ReplaceAll(p, wildcard, "")
		return func(name string) bool { return strings.HasPrefix(name, prefix) }, nil

	case strings.HasPrefix(p, wildcard):
		suffix := strings.ReplaceAll(p, wildcard, "")
		return func(name string) bool { return strings.HasSuffix(name, suffix) }, nil
	}

	if strings.Count(p, wildcard) > 1 {
		return nil, errors.Wrapf(ErrInvalidPattern, "%q has more than one %s", pattern, wildcard)
	}
	// The two spans may overlap; they only have to fit in the name.
	prefix, suffix, _ := strings.Cut(p, wildcard)
	return func(name string) bool {
		return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
	}, nil
}

// MaxSpan is the longest year range RangeProjection fills.
const MaxSpan = 500

// RangeProjection returns index-aligned years and frequencies for every year
// in [firstYear, lastYear], 0 where the name has no entry. The range must
// start no earlier than FirstYear and cover fewer than MaxSpan years.
func RangeProjection(names *NameIndex, query string, firstYear, lastYear int) (models.TrendSeries, error) {
	name := Capitalize(query)
	series := models.TrendSeries{Name: name}

	if names.Len() == 0 {
		return series, ErrEmptyDataset
	}
	if _, ok := names.Lookup(name); !ok {
		return series, notFound(name, lastYear)
	}
	if firstYear < FirstYear || lastYear < firstYear || lastYear-firstYear >= MaxSpan {
		return series, errors.Wrapf(ErrYearOutOfRange, "range [%d, %d]", firstYear, lastYear)
	}

	view, err := Project(names, name)
	if err != nil {
		return series, err
	}
	series.Years, series.Boys, series.Girls = view.Span(firstYear, lastYear)
	return series, nil
}

// NotFoundMessage is the user-facing text for a name missing from the index.
func NotFoundMessage(name string, lastYear int) string {
	return fmt.Sprintf("There were no babies named %s born in Alberta between %d and %d",
		name, FirstYear, lastYear)
}

func notFound(name string, lastYear int) error {
	return errors.Wrap(ErrNameNotFound, NotFoundMessage(name, lastYear))
}
