package ourlads

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is a rectangular grid extracted from an HTML <table>. Ourlads uses
// a two-row header ("No" over "Player N"), so header cells are kept as
// levels rather than flattened at parse time.
type Table struct {
	Header [][]string
	Rows   [][]string
}

// Width returns the widest row across header levels and body rows.
func (t Table) Width() int {
	width := 0
	for _, level := range t.Header {
		if len(level) > width {
			width = len(level)
		}
	}
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// ExtractFirstTable parses raw HTML and returns the first table found.
// ok is false when parsing fails, no table exists, or the table has no
// body rows. Tables without <th> cells promote their first row to the
// header.
func ExtractFirstTable(html string) (Table, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Table{}, false
	}

	sel := doc.Find("table").First()
	if sel.Length() == 0 {
		return Table{}, false
	}

	var t Table
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells, header := rowCells(tr)
		if len(cells) == 0 {
			return
		}
		// Header rows only count while no body row has been seen.
		if header && len(t.Rows) == 0 {
			t.Header = append(t.Header, cells)
		} else {
			t.Rows = append(t.Rows, cells)
		}
	})

	if len(t.Header) == 0 && len(t.Rows) > 0 {
		t.Header = [][]string{t.Rows[0]}
		t.Rows = t.Rows[1:]
	}

	if len(t.Rows) == 0 {
		return Table{}, false
	}
	return t, true
}

// rowCells collects the cell texts of one <tr>, expanding colspan so every
// row lines up column-by-column. A row made of <th> cells only is a header
// row.
func rowCells(tr *goquery.Selection) (cells []string, header bool) {
	header = tr.Find("th").Length() > 0 && tr.Find("td").Length() == 0

	tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.TrimSpace(cell.Text())
		span := 1
		if v, ok := cell.Attr("colspan"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 1 {
				span = n
			}
		}
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	})

	return cells, header
}

// cellAt returns the trimmed cell at column idx, or "" when the row is
// shorter than that.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
