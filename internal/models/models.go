package models

// Gender is the sex recorded for a name in a given year.
type Gender string

const (
	Boy  Gender = "Boy"
	Girl Gender = "Girl"
)

// Valid reports whether g is one of the two recorded genders.
// The comparison is case-sensitive.
func (g Gender) Valid() bool {
	return g == Boy || g == Girl
}

// Row is one normalized record of the source sheet.
type Row struct {
	Line      int    `json:"line"`
	Rank      int    `json:"rank"`
	Ranked    bool   `json:"ranked"`
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
	Gender    Gender `json:"gender"`
	Year      int    `json:"year"`
}

// NameEntry is one element of a name's history.
type NameEntry struct {
	Frequency int    `json:"frequency"`
	Gender    Gender `json:"gender"`
	Year      int    `json:"year"`
}

// TopTenEntry is one ranked row of a year's top-ten bucket.
type TopTenEntry struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
	Gender    Gender `json:"gender"`
}

// NameHistory is a name together with its ordered history.
type NameHistory struct {
	Name    string      `json:"name"`
	Entries []NameEntry `json:"entries"`
}

// YearTopTen is a year together with its ordered top-ten bucket.
type YearTopTen struct {
	Year    int           `json:"year"`
	Entries []TopTenEntry `json:"entries"`
}

// YearFreq is one printed line of a name trend.
type YearFreq struct {
	Year  int `json:"year"`
	Boys  int `json:"boys"`
	Girls int `json:"girls"`
}

// ExactResult is the answer to an exact name search: one line per recorded year.
type ExactResult struct {
	Name string     `json:"name"`
	Rows []YearFreq `json:"rows"`
}

// NameTrend is one name matched by a wildcard search, with its full history.
type NameTrend struct {
	Name string     `json:"name"`
	Rows []YearFreq `json:"rows"`
}

// RankedName is a name and its frequency within a rank group.
type RankedName struct {
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
}

// RankGroup is a set of names sharing one rank. Position is the display
// slot, which skips numbers after a tie.
type RankGroup struct {
	Position int          `json:"position"`
	Rank     int          `json:"rank"`
	Names    []RankedName `json:"names"`
}

// TopTenList holds a year's girls' and boys' rank groups.
type TopTenList struct {
	Year  int         `json:"year"`
	Girls []RankGroup `json:"girls"`
	Boys  []RankGroup `json:"boys"`
}

// TrendSeries holds three index-aligned slices covering a continuous year range.
type TrendSeries struct {
	Name  string `json:"name"`
	Years []int  `json:"years"`
	Boys  []int  `json:"boys"`
	Girls []int  `json:"girls"`
}

// ChartConfig is a render-ready line chart for a web client.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
}

// ChartSeries is one line of a ChartConfig.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is one labelled value; the label is a two-digit year.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
