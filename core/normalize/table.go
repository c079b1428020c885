package normalize

import "strings"

// table accumulates cells between <table> and </table>.
type table struct {
	inHead bool

	header []string
	rows   [][]string
	row    []string
}

func (t *table) reset() {
	t.header = nil
	t.rows = nil
	t.row = nil
}

// closeRow files the current row. The first non-empty row closed inside
// <thead> becomes the header.
func (t *table) closeRow() {
	if len(t.row) == 0 {
		return
	}
	if t.inHead && len(t.header) == 0 {
		t.header = t.row
	} else {
		t.rows = append(t.rows, t.row)
	}
	t.row = nil
}

// render prints the collected table as a pipe table. Without a header
// from <thead> the first row is used. Rows whose cell count differs from
// the header are dropped.
func (t *table) render() string {
	if len(t.header) == 0 && len(t.rows) == 0 {
		return ""
	}

	header, rows := t.header, t.rows
	if len(header) == 0 {
		header, rows = rows[0], rows[1:]
	}

	var b strings.Builder
	b.WriteString("\n")
	writeRow(&b, header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep)

	for _, r := range rows {
		if len(r) == len(header) {
			writeRow(&b, r)
		}
	}
	b.WriteString("\n")
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}
