// core/tagger/stats.go
package tagger

// Classification category names. The categories are not mutually
// exclusive: a single read may increment several counters.
const (
	StatJustPrimer       = "n_only_primer"
	StatMultipleBarcodes = "n_multiple_bcs"
	StatNoBarcode        = "n_no_barcode"
	StatBarcodeMismatch  = "n_barcode_mismatch"
	StatJunk             = "n_junk"
	StatRegular          = "n_regular"
)

// predicates is the fixed evaluation order for the six categories; Stats
// counters are indexed in the same order.
var predicates = []struct {
	name string
	fn   func(TaggedRead) bool
}{
	{StatJustPrimer, TaggedRead.IsJustPrimer},
	{StatMultipleBarcodes, TaggedRead.HasMultipleBarcodes},
	{StatNoBarcode, func(r TaggedRead) bool { return !r.HasBarcode() }},
	{StatBarcodeMismatch, func(r TaggedRead) bool { return r.BarcodeMismatch }},
	{StatJunk, func(r TaggedRead) bool { return r.Junk != "" }},
	{StatRegular, TaggedRead.IsRegular},
}

// StatNames returns the category names in their fixed evaluation order.
func StatNames() []string {
	names := make([]string, len(predicates))
	for i, p := range predicates {
		names[i] = p.name
	}
	return names
}

// Stats accumulates per-category read counts. It performs no locking; a
// concurrent driver shards one Stats per worker and merges at the end.
type Stats struct {
	counts [6]uint64
}

// NewStats returns an empty accumulator.
func NewStats() *Stats { return &Stats{} }

// Add evaluates every category predicate against r and increments each
// counter that holds.
func (s *Stats) Add(r TaggedRead) {
	for i, p := range predicates {
		if p.fn(r) {
			s.counts[i]++
		}
	}
}

// Merge folds another shard into s.
func (s *Stats) Merge(o *Stats) {
	for i := range s.counts {
		s.counts[i] += o.counts[i]
	}
}

// Count returns the counter for a category name, 0 for unknown names.
func (s *Stats) Count(name string) uint64 {
	for i, p := range predicates {
		if p.name == name {
			return s.counts[i]
		}
	}
	return 0
}

// Counts returns a snapshot keyed by category name.
func (s *Stats) Counts() map[string]uint64 {
	out := make(map[string]uint64, len(predicates))
	for i, p := range predicates {
		out[p.name] = s.counts[i]
	}
	return out
}
