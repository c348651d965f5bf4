package engine

import (
	"testing"

	"babynames/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(rank int, name string, freq int, g models.Gender, year int) models.Row {
	return models.Row{Rank: rank, Ranked: rank > 0, Name: name, Frequency: freq, Gender: g, Year: year}
}

func TestTopTen(t *testing.T) {
	// Scenario (1980):
	// Girls: Jennifer 1, Amanda 2, Lisa and Nicole tied at 6, Sarah 8
	// Boys:  Michael 1, Christopher 2, interleaved with the girls
	rows := []models.Row{
		row(1, "Jennifer", 792, models.Girl, 1980),
		row(1, "Michael", 732, models.Boy, 1980),
		row(2, "Amanda", 486, models.Girl, 1980),
		row(6, "Lisa", 264, models.Girl, 1980),
		row(2, "Christopher", 633, models.Boy, 1980),
		row(6, "Nicole", 264, models.Girl, 1980),
		row(8, "Sarah", 250, models.Girl, 1980),
		row(11, "Kelly", 123, models.Girl, 1980),
		row(1, "Michael", 705, models.Boy, 1981),
	}
	s := NewSession(rows, 1981)

	list, err := TopTen(s.TopTen, s.MaxYear, 1980)
	require.NoError(t, err)
	assert.Equal(t, 1980, list.Year)

	require.Len(t, list.Girls, 4)
	assert.Equal(t, []int{1, 2, 3, 5}, positions(list.Girls))
	assert.Equal(t, []models.RankedName{{Name: "Lisa", Frequency: 264}, {Name: "Nicole", Frequency: 264}}, list.Girls[2].Names)
	assert.Equal(t, 6, list.Girls[2].Rank)

	require.Len(t, list.Boys, 2)
	assert.Equal(t, "Michael", list.Boys[0].Names[0].Name)
	assert.Equal(t, "Christopher", list.Boys[1].Names[0].Name)
}

func TestRankGroupsPositionalSkip(t *testing.T) {
	var entries []models.TopTenEntry
	for _, r := range []int{1, 2, 3, 4, 5, 6, 6, 8, 9, 10} {
		entries = append(entries, models.TopTenEntry{Rank: r, Name: "N", Gender: models.Girl})
	}

	groups := rankGroups(entries)
	require.Len(t, groups, 9)
	// Two names at 6 consume slots 6 and 7, so rank 8 prints at 8.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 8, 9, 10}, positions(groups))
	assert.Len(t, groups[5].Names, 2)
}

func TestRankGroupsDenseTie(t *testing.T) {
	// Raw ranks without a gap still shift the following position.
	entries := []models.TopTenEntry{
		{Rank: 1, Name: "A"}, {Rank: 2, Name: "B"}, {Rank: 2, Name: "C"}, {Rank: 3, Name: "D"},
	}
	assert.Equal(t, []int{1, 2, 4}, positions(rankGroups(entries)))
}

func TestTopTenErrors(t *testing.T) {
	s := NewSession([]models.Row{
		row(1, "Michael", 732, models.Boy, 1980),
		row(1, "Michael", 690, models.Boy, 1982),
	}, 1982)

	tests := []struct {
		name string
		ix   *YearIndex
		year int
		want error
	}{
		{"empty index", &YearIndex{}, 1980, ErrEmptyDataset},
		{"nil index", nil, 1980, ErrEmptyDataset},
		{"before first year", s.TopTen, 1979, ErrYearOutOfRange},
		{"after last year", s.TopTen, 1983, ErrYearOutOfRange},
		{"year without a bucket", s.TopTen, 1981, ErrYearOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TopTen(tt.ix, 1982, tt.year)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func positions(groups []models.RankGroup) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = g.Position
	}
	return out
}
