// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"bartseq-core/tagger"

	"bartseq/pkg/api"
)

// ToAPITaggedRead converts a domain TaggedRead to the stable wire schema (v1).
func ToAPITaggedRead(r tagger.TaggedRead) api.TaggedReadV1 {
	return api.TaggedReadV1{
		Header:           r.Header,
		Barcode:          r.Barcode,
		Junk:             r.Junk,
		Linker:           r.Linker,
		Amplicon:         r.Amplicon,
		Qual:             r.CutQual(),
		OtherBarcodes:    append([]string(nil), r.OtherBarcodes...),
		BarcodeMismatch:  r.BarcodeMismatch,
		MultipleBarcodes: r.HasMultipleBarcodes(),
		JustPrimer:       r.IsJustPrimer(),
		Regular:          r.IsRegular(),
	}
}

// StartJSONLWriter streams each tagged read as one JSON line (v1).
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- tagger.TaggedRead, <-chan error) {
	var enc *json.Encoder
	return start(out, bufSize, func(bw *bufio.Writer, r tagger.TaggedRead) error {
		if enc == nil {
			enc = json.NewEncoder(bw)
		}
		return enc.Encode(ToAPITaggedRead(r))
	})
}
