// internal/writers/fastq.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bartseq-core/tagger"
)

// StartFastqWriter re-emits each read as FASTQ: the classification summary
// is appended to the header, the sequence is cut down to the amplicon, and
// the quality string is cut to match. "-" marks absent segments.
func StartFastqWriter(out io.Writer, bufSize int) (chan<- tagger.TaggedRead, <-chan error) {
	return start(out, bufSize, writeFastqRecord)
}

func writeFastqRecord(bw *bufio.Writer, r tagger.TaggedRead) error {
	_, err := fmt.Fprintf(bw,
		"@%s barcode=%s linker=%s multi-bc=%t just-primer=%t other-bcs=%s barcode-mismatch=%t junk=%s\n%s\n+\n%s\n",
		r.Header,
		orDash(r.Barcode),
		orDash(r.Linker),
		r.HasMultipleBarcodes(),
		r.IsJustPrimer(),
		orDash(strings.Join(r.OtherBarcodes, ",")),
		r.BarcodeMismatch,
		orDash(r.Junk),
		r.Amplicon,
		r.CutQual(),
	)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
