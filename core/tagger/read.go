// core/tagger/read.go
package tagger

// TaggedRead is the classification result for one read. Segment fields use
// "" for absent; Amplicon always holds the remainder of the read after the
// barcode and linker (the whole read when no barcode was found).
type TaggedRead struct {
	Header          string
	Qual            string // full quality string
	PrimerLen       int
	Junk            string
	Barcode         string // canonical barcode ID, "" when none found
	Linker          string
	Amplicon        string
	OtherBarcodes   []string // sorted IDs of non-primary barcodes in the read
	BarcodeMismatch bool     // matched region differs from the canonical sequence
}

// HasBarcode reports whether a primary barcode was found.
func (r TaggedRead) HasBarcode() bool { return r.Barcode != "" }

// HasMultipleBarcodes reports whether further barcodes matched besides the
// primary one.
func (r TaggedRead) HasMultipleBarcodes() bool { return len(r.OtherBarcodes) > 0 }

// IsJustPrimer reports a barcode-bearing read whose amplicon is no longer
// than the configured primer, i.e. carries no insert.
func (r TaggedRead) IsJustPrimer() bool {
	return r.HasBarcode() && len(r.Amplicon) <= r.PrimerLen
}

// IsRegular reports a barcode-bearing read with a real insert.
func (r TaggedRead) IsRegular() bool { return r.HasBarcode() && !r.IsJustPrimer() }

// CutQual returns the quality window aligned with the amplicon. The
// amplicon is always a suffix of the read, so this is the matching suffix
// of the quality string.
func (r TaggedRead) CutQual() string {
	if len(r.Amplicon) >= len(r.Qual) {
		return r.Qual
	}
	return r.Qual[len(r.Qual)-len(r.Amplicon):]
}
