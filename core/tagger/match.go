// core/tagger/match.go
package tagger

import (
	"sort"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"bartseq-core/barcode"
)

// Match locates one barcode pattern occurrence in a read. End is exclusive;
// Barcode is the canonical barcode ID the pattern resolves to.
type Match struct {
	Start   int
	End     int
	Barcode string
}

// Matcher finds every indexed pattern occurrence in a read in a single
// left-to-right pass. It is read-only after construction and safe for
// concurrent Scan calls.
type Matcher struct {
	ac       ahocorasick.AhoCorasick
	barcodes []string // pattern index -> barcode ID
	empty    bool
}

// NewMatcher compiles the surviving pattern set of idx into an Aho-Corasick
// automaton. Patterns are inserted in sorted order so the automaton is
// deterministic regardless of map iteration.
func NewMatcher(idx *barcode.Index) *Matcher {
	if len(idx.Patterns) == 0 {
		return &Matcher{empty: true}
	}
	patterns := make([]string, 0, len(idx.Patterns))
	for pat := range idx.Patterns {
		patterns = append(patterns, pat)
	}
	sort.Strings(patterns)
	ids := make([]string, len(patterns))
	for i, pat := range patterns {
		ids[i] = idx.Patterns[pat]
	}
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.StandardMatch,
		DFA:       true,
	})
	return &Matcher{ac: builder.Build(patterns), barcodes: ids}
}

// Scan reports all pattern occurrences in seq, overlapping included, in
// automaton discovery order (ascending end offset). Results are
// deduplicated by (start, end, barcode) preserving first-seen order.
func (m *Matcher) Scan(seq string) []Match {
	if m.empty {
		return nil
	}
	var out []Match
	seen := make(map[Match]struct{})
	iter := m.ac.IterOverlapping(seq)
	for next := iter.Next(); next != nil; next = iter.Next() {
		mt := Match{Start: next.Start(), End: next.End(), Barcode: m.barcodes[next.Pattern()]}
		if _, dup := seen[mt]; dup {
			continue
		}
		seen[mt] = struct{}{}
		out = append(out, mt)
	}
	return out
}
