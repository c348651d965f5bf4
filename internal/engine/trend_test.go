package engine

import (
	"testing"

	"babynames/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	names, _ := Build([]models.Row{
		row(0, "Jordan", 40, models.Girl, 1981),
		row(0, "Jordan", 55, models.Boy, 1981),
		row(0, "Jordan", 12, models.Boy, 1980),
		// Duplicate gender rows for one year: the first one wins.
		row(0, "Jordan", 99, models.Boy, 1981),
		row(0, "Jordan", 98, models.Girl, 1981),
	})

	view, err := Project(names, "Jordan")
	require.NoError(t, err)

	assert.Equal(t, []int{1980, 1981}, view.Years())
	assert.Equal(t, []TrendSlot{{models.Girl, 40}, {models.Boy, 55}}, view[1981])
	assert.Equal(t, []TrendSlot{{models.Boy, 12}}, view[1980])

	boys, girls := view.Frequencies(1981)
	assert.Equal(t, 55, boys)
	assert.Equal(t, 40, girls)

	boys, girls = view.Frequencies(1990)
	assert.Zero(t, boys)
	assert.Zero(t, girls)
}

func TestProjectNotFound(t *testing.T) {
	_, err := Project(indexOf("Jordan"), "Taylor")
	assert.True(t, errors.Is(err, ErrNameNotFound))
}

func TestTrendViewSpan(t *testing.T) {
	view := TrendView{
		1980: {{models.Boy, 5}},
		1982: {{models.Girl, 7}, {models.Boy, 1}},
	}

	years, boys, girls := view.Span(1980, 1983)
	assert.Equal(t, []int{1980, 1981, 1982, 1983}, years)
	assert.Equal(t, []int{5, 0, 1, 0}, boys)
	assert.Equal(t, []int{0, 0, 7, 0}, girls)

	years, _, _ = view.Span(1983, 1980)
	assert.Empty(t, years)
}
