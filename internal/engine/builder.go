package engine

import (
	"babynames/internal/models"
)

// TopTenCutoff is the first rank excluded from the year index.
const TopTenCutoff = 11

// Build makes one pass over rows and returns the name index and the
// year top-ten index. Both preserve source order. An empty input yields
// two empty indices.
func Build(rows []models.Row) (*NameIndex, *YearIndex) {
	names := &NameIndex{buckets: make(map[string][]models.NameEntry)}
	years := &YearIndex{buckets: make(map[int][]models.TopTenEntry)}

	for _, r := range rows {
		if _, ok := names.buckets[r.Name]; !ok {
			names.order = append(names.order, r.Name)
		}
		names.buckets[r.Name] = append(names.buckets[r.Name], models.NameEntry{
			Frequency: r.Frequency,
			Gender:    r.Gender,
			Year:      r.Year,
		})

		if !r.Ranked || r.Rank >= TopTenCutoff {
			continue
		}
		if _, ok := years.buckets[r.Year]; !ok {
			years.order = append(years.order, r.Year)
		}
		years.buckets[r.Year] = append(years.buckets[r.Year], models.TopTenEntry{
			Rank:      r.Rank,
			Name:      r.Name,
			Frequency: r.Frequency,
			Gender:    r.Gender,
		})
	}

	return names, years
}
