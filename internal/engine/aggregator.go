package engine

import (
	"babynames/internal/models"
	"github.com/pkg/errors"
)

// TopTen returns the girls' and boys' rank groups for year.
//
// The year must lie in [FirstYear, maxYear] and be present in the index.
func TopTen(years *YearIndex, maxYear, year int) (models.TopTenList, error) {
	list := models.TopTenList{Year: year}

	if years.Len() == 0 {
		return list, ErrEmptyDataset
	}
	if year < FirstYear || year > maxYear {
		return list, errors.Wrapf(ErrYearOutOfRange, "%d not in [%d, %d]", year, FirstYear, maxYear)
	}
	bucket, ok := years.Lookup(year)
	if !ok {
		return list, errors.Wrapf(ErrYearOutOfRange, "no top ten for %d", year)
	}

	var girls, boys []models.TopTenEntry
	for _, e := range bucket {
		switch e.Gender {
		case models.Girl:
			girls = append(girls, e)
		case models.Boy:
			boys = append(boys, e)
		}
	}

	list.Girls = rankGroups(girls)
	list.Boys = rankGroups(boys)
	return list, nil
}

// rankGroups groups entries by rank in the order ranks are first seen and
// assigns each group its display position. The position pointer starts at 1
// and advances by the size of each group, so a tie of two at position 6
// makes the next group print at 8.
func rankGroups(entries []models.TopTenEntry) []models.RankGroup {
	groups := make([]models.RankGroup, 0, len(entries))
	byRank := make(map[int]int)

	for _, e := range entries {
		name := models.RankedName{Name: e.Name, Frequency: e.Frequency}
		if i, ok := byRank[e.Rank]; ok {
			groups[i].Names = append(groups[i].Names, name)
			continue
		}
		byRank[e.Rank] = len(groups)
		groups = append(groups, models.RankGroup{Rank: e.Rank, Names: []models.RankedName{name}})
	}

	slot := 1
	for i := range groups {
		groups[i].Position = slot
		slot += len(groups[i].Names)
	}
	return groups
}
