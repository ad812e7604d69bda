// internal/writers/tsv.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bartseq-core/tagger"
)

// StartTSVWriter prints one tab-separated line per read.
func StartTSVWriter(out io.Writer, bufSize int, header bool) (chan<- tagger.TaggedRead, <-chan error) {
	wroteHeader := !header
	return start(out, bufSize, func(bw *bufio.Writer, r tagger.TaggedRead) error {
		if !wroteHeader {
			wroteHeader = true
			if _, err := fmt.Fprintln(bw,
				"header\tbarcode\tjunk\tlinker\tamplicon\tqual\tother_barcodes\tbarcode_mismatch\tjust_primer\tregular"); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(bw,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\t%t\t%t\t%t\n",
			r.Header,
			orDash(r.Barcode),
			orDash(r.Junk),
			orDash(r.Linker),
			r.Amplicon,
			r.CutQual(),
			orDash(strings.Join(r.OtherBarcodes, ",")),
			r.BarcodeMismatch,
			r.IsJustPrimer(),
			r.IsRegular(),
		)
		return err
	})
}
