package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/stnikolas/ul-timetable/internal/timetable"
)

// TimetableTableID is the DOM id of the student timetable grid.
const TimetableTableID = "MainContent_StudentTimetableGridView"

// Grid is the raw timetable grid: one column per day header, each holding
// the text lines of every non-empty cell in that column.
type Grid struct {
	Columns []DayColumn
}

// DayColumn is one day's worth of raw cells. Label is the column header as
// scraped; Cells holds one line slice per non-empty grid cell.
type DayColumn struct {
	Label string
	Cells [][]string
}

// ExtractGrid parses the timetable page and returns the raw grid. It fails
// if the timetable table is missing, which usually means the login or
// navigation step served the wrong page.
func ExtractGrid(r io.Reader) (*Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table#" + TimetableTableID).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("timetable table %q not found in page", TimetableTableID)
	}

	grid := &Grid{}
	table.Find("th").Each(func(i int, th *goquery.Selection) {
		grid.Columns = append(grid.Columns, DayColumn{Label: strings.TrimSpace(th.Text())})
	})
	if len(grid.Columns) == 0 {
		return nil, fmt.Errorf("timetable table has no day headers")
	}

	table.Find("tr").Each(func(rowIdx int, row *goquery.Selection) {
		row.Find("td").Each(func(colIdx int, cell *goquery.Selection) {
			if colIdx >= len(grid.Columns) {
				return
			}
			lines := textLines(cell)
			if len(lines) > 0 {
				grid.Columns[colIdx].Cells = append(grid.Columns[colIdx].Cells, lines)
			}
		})
	})
	return grid, nil
}

// ParseEntries runs the row parser over every cell of the grid, failing
// fast on the first malformed column or cell. Callers that prefer to skip
// bad cells and keep going can walk Grid.Columns themselves.
func ParseEntries(grid *Grid) ([]timetable.ScheduleEntry, error) {
	var entries []timetable.ScheduleEntry
	for _, col := range grid.Columns {
		day, err := timetable.ParseDay(col.Label)
		if err != nil {
			return nil, err
		}
		for _, cell := range col.Cells {
			cellEntries, err := timetable.ParseDayCell(day, cell)
			if err != nil {
				return nil, err
			}
			entries = append(entries, cellEntries...)
		}
	}
	return entries, nil
}

// textLines collects the trimmed, non-empty text nodes under a cell in
// document order, one line per node. Cell fields are separated by <br>
// tags, so each text node is one field.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return lines
}
