// internal/report/report_test.go
package report

import (
	"bytes"
	"strings"
	"testing"

	"bartseq-core/barcode"
)

func TestWriteMatrix(t *testing.T) {
	idx, err := barcode.BuildIndex([]barcode.Barcode{{ID: "X", Seq: "AAAA"}, {ID: "Y", Seq: "AAAT"}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, idx.Blacklist, idx.Sequence); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"<th>X</th>", "<th>Y</th>", `<span class="a">`, `<span class="b">`} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
	// AAAG matches neither barcode at its substituted position.
	if !strings.Contains(got, `<span class="none">G</span>`) {
		t.Error("substituted base not marked as matching neither sequence")
	}
}

func TestWriteEmptyBlacklist(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<table>") {
		t.Error("expected an (empty) table shell")
	}
}
