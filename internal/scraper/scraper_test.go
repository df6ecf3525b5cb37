package scraper

import (
	"strings"
	"testing"
)

const timetableHTML = `
<html>
<body>
<table id="MainContent_StudentTimetableGridView">
  <tr>
    <th>Monday</th><th>Tuesday</th><th>Wednesday</th><th>Thursday</th><th>Friday</th>
  </tr>
  <tr>
    <td>
      09:00 - 10:00<br/>
      CS4006 - LEC<br/>
      Dr N. Stavros<br/>
      CSG001<br/>
      Wks:1-11,13
    </td>
    <td></td>
    <td>
      15:00 - 17:00<br/>
      CS4006 - LAB<br/>
      Mr T. Hall<br/>
      CS2044<br/>
      Wks:2-12
    </td>
    <td>&nbsp;</td>
    <td>
      11:00 - 12:00<br/>
      MA4005 - TUT
    </td>
  </tr>
  <tr>
    <td>
      14:00 - 15:00<br/>
      EE4013 - LEC<br/>
      Dr J. Doyle<br/>
      ERB001<br/>
      Wks:1-12
    </td>
    <td></td><td></td><td></td><td></td>
  </tr>
</table>
</body>
</html>`

func TestExtractGrid(t *testing.T) {
	grid, err := ExtractGrid(strings.NewReader(timetableHTML))
	if err != nil {
		t.Fatalf("ExtractGrid returned error: %v", err)
	}

	if len(grid.Columns) != 5 {
		t.Fatalf("got %d columns, want 5", len(grid.Columns))
	}
	wantLabels := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for i, want := range wantLabels {
		if grid.Columns[i].Label != want {
			t.Errorf("column %d label = %q, want %q", i, grid.Columns[i].Label, want)
		}
	}

	if got := len(grid.Columns[0].Cells); got != 2 {
		t.Errorf("Monday has %d cells, want 2", got)
	}
	if got := len(grid.Columns[1].Cells); got != 0 {
		t.Errorf("Tuesday has %d cells, want 0", got)
	}

	monday := grid.Columns[0].Cells[0]
	want := []string{"09:00 - 10:00", "CS4006 - LEC", "Dr N. Stavros", "CSG001", "Wks:1-11,13"}
	if len(monday) != len(want) {
		t.Fatalf("Monday cell lines = %v, want %v", monday, want)
	}
	for i := range want {
		if monday[i] != want[i] {
			t.Errorf("Monday line %d = %q, want %q", i, monday[i], want[i])
		}
	}
}

func TestExtractGridMissingTable(t *testing.T) {
	_, err := ExtractGrid(strings.NewReader("<html><body><p>Session expired</p></body></html>"))
	if err == nil {
		t.Fatal("ExtractGrid succeeded without a timetable table")
	}
	if !strings.Contains(err.Error(), TimetableTableID) {
		t.Errorf("error %q does not name the missing table", err)
	}
}

func TestParseEntries(t *testing.T) {
	grid, err := ExtractGrid(strings.NewReader(timetableHTML))
	if err != nil {
		t.Fatalf("ExtractGrid returned error: %v", err)
	}

	entries, err := ParseEntries(grid)
	if err != nil {
		t.Fatalf("ParseEntries returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Grid order is column-major: both Monday slots come first.
	if entries[0].CourseCode != "CS4006 - LEC" || entries[1].CourseCode != "EE4013 - LEC" {
		t.Errorf("Monday entries = %q, %q", entries[0].CourseCode, entries[1].CourseCode)
	}
	if entries[2].Day != "Wednesday" || entries[2].Room != "CS2044" {
		t.Errorf("Wednesday entry = %+v", entries[2])
	}
	if entries[3].Day != "Friday" || entries[3].Lecturer != "" {
		t.Errorf("Friday entry = %+v", entries[3])
	}
}

func TestParseEntriesRejectsWeekendColumn(t *testing.T) {
	html := `<table id="MainContent_StudentTimetableGridView">
  <tr><th>Monday</th><th>Saturday</th></tr>
  <tr><td></td><td>09:00 - 10:00<br/>CS4006 - LEC</td></tr>
</table>`

	grid, err := ExtractGrid(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ExtractGrid returned error: %v", err)
	}
	if _, err := ParseEntries(grid); err == nil {
		t.Fatal("ParseEntries accepted a Saturday column")
	}
}
