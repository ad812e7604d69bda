// internal/fastq/reader.go
package fastq

import (
	"context"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// Record is one sequencing read. Seq and Qual have equal length.
type Record struct {
	Header string
	Seq    string
	Qual   string
}

// Stream reads FASTQ records from path ("-" = stdin, gzip transparent) and
// delivers them on a channel until EOF or ctx cancellation. The error
// channel carries at most one error and is closed when streaming ends.
func Stream(ctx context.Context, path string) (<-chan Record, <-chan error) {
	out := make(chan Record, 64)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		rdr, err := fastx.NewDefaultReader(path)
		if err != nil {
			errc <- err
			return
		}
		defer rdr.Close()

		for {
			rec, err := rdr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errc <- err
				return
			}
			// The reader reuses its buffers; string conversion copies.
			r := Record{
				Header: string(rec.Name),
				Seq:    string(rec.Seq.Seq),
				Qual:   string(rec.Seq.Qual),
			}
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc
}
