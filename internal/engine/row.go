package engine

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"babynames/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column layout of the source sheet.
const (
	colRank = iota
	colName
	colFrequency
	colGender
	colYear
	numColumns
)

// A cases.Caser is stateful and must not be shared between goroutines,
// so every call gets its own.
func upperCase(s string) string { return cases.Upper(language.Und).String(s) }
func lowerCase(s string) string { return cases.Lower(language.Und).String(s) }

// Capitalize upper-cases the first letter of s and lower-cases the rest,
// which is the key convention of the name index.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upperCase(s[:size]) + lowerCase(s[size:])
}

// NormalizeRow coerces the cells of one sheet row into a Row.
//
// A year that is not an integer yields ErrMalformedRow. A missing name, a
// gender other than "Boy"/"Girl" or a negative or non-integer frequency
// yields ErrInvalidRow. A rank that is not an integer leaves the row unranked.
func NormalizeRow(line int, cells []string) (models.Row, error) {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	row := models.Row{Line: line}

	year, err := parseInt(get(colYear))
	if err != nil {
		return row, newRowError(line, "year", get(colYear), ErrMalformedRow)
	}
	row.Year = year

	if rank, err := parseInt(get(colRank)); err == nil && rank > 0 {
		row.Rank = rank
		row.Ranked = true
	}

	row.Name = Capitalize(get(colName))
	if row.Name == "" {
		return row, newRowError(line, "name", get(colName), ErrInvalidRow)
	}

	freq, err := parseInt(get(colFrequency))
	if err != nil || freq < 0 {
		return row, newRowError(line, "frequency", get(colFrequency), ErrInvalidRow)
	}
	row.Frequency = freq

	row.Gender = models.Gender(get(colGender))
	if !row.Gender.Valid() {
		return row, newRowError(line, "gender", get(colGender), ErrInvalidRow)
	}

	return row, nil
}

// parseInt accepts plain integers and spreadsheet renderings such as
// "1,980" or "1980.0".
func parseInt(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}
