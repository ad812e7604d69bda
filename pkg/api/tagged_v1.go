// pkg/api/tagged_v1.go
package api

// TaggedReadV1 is the stable JSON/JSONL schema for classified reads.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TaggedReadV1 struct {
	Header           string   `json:"header"`
	Barcode          string   `json:"barcode,omitempty"`
	Junk             string   `json:"junk,omitempty"`
	Linker           string   `json:"linker,omitempty"`
	Amplicon         string   `json:"amplicon"`
	Qual             string   `json:"qual,omitempty"` // amplicon-aligned quality
	OtherBarcodes    []string `json:"other_barcodes,omitempty"`
	BarcodeMismatch  bool     `json:"barcode_mismatch,omitempty"`
	MultipleBarcodes bool     `json:"multiple_barcodes,omitempty"`
	JustPrimer       bool     `json:"just_primer,omitempty"`
	Regular          bool     `json:"regular,omitempty"`
}
