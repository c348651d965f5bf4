package cli

import (
	"fmt"
	"io"
	"strings"

	"babynames/internal/engine"
	"babynames/internal/models"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

const topTenSlots = 10

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault
	return t
}

// writeTrend prints one name's per-year boy and girl counts.
func writeTrend(w io.Writer, name string, rows []models.YearFreq) {
	fmt.Fprintf(w, "\n%s:\n", name)

	t := newTable(w)
	t.AppendHeader(table.Row{"Year", "Boys", "Girls"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Year, r.Boys, r.Girls})
	}
	t.Render()
}

// writeTopTen prints the girls' then the boys' list. A tie shares one line
// and the slots it consumes are printed as empty numbered lines.
func writeTopTen(w io.Writer, list models.TopTenList) {
	fmt.Fprintf(w, "\nTop 10 names for baby girls given in Alberta in %d:\n", list.Year)
	writeRankGroups(w, list.Girls)

	fmt.Fprintf(w, "\nTop 10 names for baby boys given in Alberta in %d:\n", list.Year)
	writeRankGroups(w, list.Boys)
}

func writeRankGroups(w io.Writer, groups []models.RankGroup) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Rank", "Name"})
	for _, g := range groups {
		names := make([]string, 0, len(g.Names))
		for _, n := range g.Names {
			names = append(names, fmt.Sprintf("%s: %d", n.Name, n.Frequency))
		}
		t.AppendRow(table.Row{g.Position, strings.Join(names, "   ")})

		for slot := g.Position + 1; slot < g.Position+len(g.Names) && slot <= topTenSlots; slot++ {
			t.AppendRow(table.Row{slot, ""})
		}
	}
	t.Render()
}

// writeSummary prints what a load produced.
func writeSummary(w io.Writer, s *engine.Session) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Names", "Top-ten years", "First year", "Last year"})
	t.AppendRow(table.Row{s.Names.Len(), s.TopTen.Len(), engine.FirstYear, s.MaxYear})
	t.Render()
}
