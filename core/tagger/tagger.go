// core/tagger/tagger.go
package tagger

import (
	"fmt"
	"sort"

	"bartseq-core/barcode"
)

// Config holds read segmentation parameters.
type Config struct {
	LinkerLen   int  // fixed linker length following the barcode
	PrimerLen   int  // primer length used by the just-primer predicate
	MaxMismatch int  // 0 or 1
	Stats       bool // accumulate classification statistics per Tag call
}

// Tagger classifies reads against a fixed barcode set. Construction builds
// the collision-aware index and the automaton once; Tag never mutates them,
// so a Tagger without internal stats is safe for concurrent use.
type Tagger struct {
	cfg     Config
	idx     *barcode.Index
	matcher *Matcher
	stats   *Stats
}

// New builds a Tagger for the given barcodes. Collisions discovered during
// index construction are non-fatal and available via Collisions.
func New(list []barcode.Barcode, cfg Config) (*Tagger, error) {
	if cfg.LinkerLen < 0 {
		return nil, fmt.Errorf("linker length must be >= 0, got %d", cfg.LinkerLen)
	}
	if cfg.PrimerLen < 0 {
		return nil, fmt.Errorf("primer length must be >= 0, got %d", cfg.PrimerLen)
	}
	idx, err := barcode.BuildIndex(list, cfg.MaxMismatch)
	if err != nil {
		return nil, err
	}
	t := &Tagger{cfg: cfg, idx: idx, matcher: NewMatcher(idx)}
	if cfg.Stats {
		t.stats = NewStats()
	}
	return t, nil
}

// Collisions returns every ambiguity detected at construction, in detection
// order.
func (t *Tagger) Collisions() []barcode.Collision { return t.idx.Collisions }

// Blacklist exposes the ambiguous patterns excluded from matching, for
// collision reporting.
func (t *Tagger) Blacklist() map[string][]barcode.Pair { return t.idx.Blacklist }

// Sequences exposes the canonical ID -> sequence mapping.
func (t *Tagger) Sequences() map[string]string { return t.idx.Sequence }

// Stats returns the internal accumulator, nil when disabled.
func (t *Tagger) Stats() *Stats { return t.stats }

// Tag classifies one read. The primary barcode is the first match in
// automaton discovery order, i.e. the leftmost-*ending* occurrence; this
// matters when a shorter pattern ends before an earlier-starting longer one
// and is kept for compatibility with existing pipelines.
func (t *Tagger) Tag(header, seq, qual string) TaggedRead {
	read := t.tag(header, seq, qual)
	if t.stats != nil {
		t.stats.Add(read)
	}
	return read
}

// TagInto is Tag with the statistics shard supplied by the caller, for
// concurrent drivers that merge shards afterwards.
func (t *Tagger) TagInto(stats *Stats, header, seq, qual string) TaggedRead {
	read := t.tag(header, seq, qual)
	if stats != nil {
		stats.Add(read)
	}
	return read
}

func (t *Tagger) tag(header, seq, qual string) TaggedRead {
	read := TaggedRead{
		Header:    header,
		Qual:      qual,
		PrimerLen: t.cfg.PrimerLen,
		Amplicon:  seq,
	}
	matches := t.matcher.Scan(seq)
	if len(matches) == 0 {
		return read
	}

	primary := matches[0]
	var others []string
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches[1:] {
		if m.Barcode == primary.Barcode {
			continue
		}
		if _, dup := seen[m.Barcode]; dup {
			continue
		}
		seen[m.Barcode] = struct{}{}
		others = append(others, m.Barcode)
	}
	sort.Strings(others)

	linkerEnd := primary.End + t.cfg.LinkerLen
	if linkerEnd > len(seq) {
		linkerEnd = len(seq)
	}
	read.Junk = seq[:primary.Start]
	read.Barcode = primary.Barcode
	read.Linker = seq[primary.End:linkerEnd]
	read.Amplicon = seq[linkerEnd:]
	read.OtherBarcodes = others
	read.BarcodeMismatch = seq[primary.Start:primary.End] != t.idx.Sequence[primary.Barcode]
	return read
}
