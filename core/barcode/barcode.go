// core/barcode/barcode.go
package barcode

import "fmt"

// Barcode pairs a sample identifier with its nucleotide sequence.
type Barcode struct {
	ID  string
	Seq string
}

// Validate checks the invariants required before indexing: a non-empty ID
// and a non-empty sequence over A/C/G/T.
func (b Barcode) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("barcode with sequence %q has empty ID", b.Seq)
	}
	if b.Seq == "" {
		return fmt.Errorf("barcode %s has empty sequence", b.ID)
	}
	for i := 0; i < len(b.Seq); i++ {
		switch b.Seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("barcode %s: invalid base %q at position %d", b.ID, b.Seq[i], i)
		}
	}
	return nil
}
