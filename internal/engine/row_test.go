package engine

import (
	"testing"

	"babynames/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"michael", "Michael"},
		{"MICHELLE", "Michelle"},
		{"  kElLy ", "Kelly"},
		{"émile", "Émile"},
		{"mary ann", "Mary ann"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Capitalize(tt.in), "Capitalize(%q)", tt.in)
	}
}

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  models.Row
		err   error
	}{
		{
			name:  "valid",
			cells: []string{"1", "MICHAEL", "732", "Boy", "1980"},
			want:  models.Row{Line: 7, Rank: 1, Ranked: true, Name: "Michael", Frequency: 732, Gender: models.Boy, Year: 1980},
		},
		{
			name:  "spreadsheet number formats",
			cells: []string{"2.0", "Jennifer", "1,204", "Girl", "1981.0"},
			want:  models.Row{Line: 7, Rank: 2, Ranked: true, Name: "Jennifer", Frequency: 1204, Gender: models.Girl, Year: 1981},
		},
		{
			name:  "unranked",
			cells: []string{"", "Eloise", "1", "Girl", "2018"},
			want:  models.Row{Line: 7, Name: "Eloise", Frequency: 1, Gender: models.Girl, Year: 2018},
		},
		{
			name:  "bad year",
			cells: []string{"1", "Michael", "732", "Boy", "198O"},
			err:   ErrMalformedRow,
		},
		{
			name:  "missing year",
			cells: []string{"1", "Michael", "732", "Boy"},
			err:   ErrMalformedRow,
		},
		{
			name:  "gender is case-sensitive",
			cells: []string{"1", "Michael", "732", "BOY", "1980"},
			err:   ErrInvalidRow,
		},
		{
			name:  "negative frequency",
			cells: []string{"1", "Michael", "-1", "Boy", "1980"},
			err:   ErrInvalidRow,
		},
		{
			name:  "fractional frequency",
			cells: []string{"1", "Michael", "1.5", "Boy", "1980"},
			err:   ErrInvalidRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRow(7, tt.cells)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err), "got %v", err)

				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, 7, rowErr.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowErrorMessage(t *testing.T) {
	err := newRowError(12, "year", "abc", ErrMalformedRow)
	assert.Equal(t, `line 12: year="abc": malformed row`, err.Error())

	err = newRowError(0, "gender", "x", ErrInvalidRow)
	assert.Equal(t, `gender="x": invalid row`, err.Error())
}
