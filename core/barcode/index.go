// core/barcode/index.go
package barcode

import "fmt"

// Pair is one ordering of two barcode IDs whose expansions reached the same
// pattern. Blacklist entries store both orderings.
type Pair struct {
	A, B string
}

// Collision records one ambiguity detected during index construction, in
// detection order. Previous is the barcode that held the pattern when
// Current claimed it.
type Collision struct {
	Pattern  string
	Previous string
	Current  string
}

// Index is the immutable pattern lookup built from a barcode set. Patterns
// never contains a blacklisted key.
type Index struct {
	Patterns   map[string]string // pattern -> barcode ID
	Blacklist  map[string][]Pair // ambiguous pattern -> colliding ID pairs
	Sequence   map[string]string // barcode ID -> canonical sequence
	Collisions []Collision
	MaxMM      int
}

// BuildIndex expands every barcode to its mismatch variants and claims each
// variant pattern. A pattern claimed by two different barcodes is recorded
// in the blacklist (last claimant wins while building) and removed from
// Patterns once all barcodes are processed: the position is inherently
// ambiguous no matter who claimed it last.
func BuildIndex(list []Barcode, maxMM int) (*Index, error) {
	if maxMM < 0 || maxMM > 1 {
		return nil, fmt.Errorf("unsupported mismatch budget %d (must be 0 or 1)", maxMM)
	}
	idx := &Index{
		Patterns:  make(map[string]string, len(list)*(1+3*8)),
		Blacklist: make(map[string][]Pair),
		Sequence:  make(map[string]string, len(list)),
		MaxMM:     maxMM,
	}
	for _, bc := range list {
		if err := bc.Validate(); err != nil {
			return nil, err
		}
		if _, dup := idx.Sequence[bc.ID]; dup {
			return nil, fmt.Errorf("duplicate barcode ID %s", bc.ID)
		}
		idx.Sequence[bc.ID] = bc.Seq

		variants, err := Variants(bc.Seq, maxMM)
		if err != nil {
			return nil, err
		}
		for _, pat := range variants {
			if prev, claimed := idx.Patterns[pat]; claimed && prev != bc.ID {
				idx.addPair(pat, prev, bc.ID)
				idx.Collisions = append(idx.Collisions, Collision{Pattern: pat, Previous: prev, Current: bc.ID})
			}
			idx.Patterns[pat] = bc.ID
		}
	}
	for pat := range idx.Blacklist {
		delete(idx.Patterns, pat)
	}
	return idx, nil
}

// addPair records both orderings of an unordered collision pair, once each.
func (idx *Index) addPair(pattern, a, b string) {
	for _, p := range idx.Blacklist[pattern] {
		if p == (Pair{a, b}) || p == (Pair{b, a}) {
			return
		}
	}
	idx.Blacklist[pattern] = append(idx.Blacklist[pattern], Pair{a, b}, Pair{b, a})
}
