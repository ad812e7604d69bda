// internal/report/report.go
package report

import (
	"html/template"
	"io"
	"sort"
	"strings"

	"bartseq-core/barcode"
)

// Collision matrix: one row/column per colliding barcode ID; each cell
// shows the ambiguous pattern(s) shared by the row/column pair, with every
// base colored by which of the two canonical sequences it matches.
var tmpl = template.Must(template.New("report").Parse(`<!doctype html>
<meta charset="utf-8">
<style>
body  { font-size: 12px; font-family: monospace }
table { border-collapse: collapse }
th, td { border: 1px solid rgba(0,0,0,.2); padding: 5px }
.a    { color: #FF6AD5 }
.b    { color: #AD8CFF }
.none { color: red }
</style>
<table>
<thead><tr><th></th>{{range .IDs}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr><th>{{.ID}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
`))

type row struct {
	ID    string
	Cells []template.HTML
}

type tableData struct {
	IDs  []string
	Rows []row
}

// Write renders the collision matrix as a standalone HTML page. blacklist
// and seqs come straight from the tagger (pattern -> ID pairs, ID ->
// canonical sequence).
func Write(w io.Writer, blacklist map[string][]barcode.Pair, seqs map[string]string) error {
	idSet := make(map[string]struct{})
	for _, pairs := range blacklist {
		for _, p := range pairs {
			idSet[p.A] = struct{}{}
			idSet[p.B] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cells := make(map[[2]string][]string)
	patterns := make([]string, 0, len(blacklist))
	for pat := range blacklist {
		patterns = append(patterns, pat)
	}
	sort.Strings(patterns)
	for _, pat := range patterns {
		for _, p := range blacklist[pat] {
			key := [2]string{p.A, p.B}
			cells[key] = append(cells[key], colorPattern(pat, seqs[p.A], seqs[p.B]))
		}
	}

	data := tableData{IDs: ids}
	for _, rid := range ids {
		r := row{ID: rid, Cells: make([]template.HTML, 0, len(ids))}
		for _, cid := range ids {
			r.Cells = append(r.Cells, template.HTML(strings.Join(cells[[2]string{rid, cid}], "<br>")))
		}
		data.Rows = append(data.Rows, r)
	}
	return tmpl.Execute(w, data)
}

// colorPattern marks each base of an ambiguous pattern by which canonical
// sequence it agrees with: plain = both, a/b = only one, none = neither.
func colorPattern(pattern, aSeq, bSeq string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		base := pattern[i : i+1]
		inA := i < len(aSeq) && aSeq[i] == pattern[i]
		inB := i < len(bSeq) && bSeq[i] == pattern[i]
		switch {
		case inA && inB:
			sb.WriteString(base)
		case inA:
			sb.WriteString(`<span class="a">` + base + `</span>`)
		case inB:
			sb.WriteString(`<span class="b">` + base + `</span>`)
		default:
			sb.WriteString(`<span class="none">` + base + `</span>`)
		}
	}
	return sb.String()
}
