// internal/writers/writer.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"bartseq-core/tagger"
)

// Output formats.
const (
	FormatFastq = "fastq"
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// Start spins up a writer goroutine for the given format and returns the
// input channel plus a one-shot error channel. Close the input channel to
// flush; broken-pipe errors are suppressed so piping into `head` works.
func Start(format string, out io.Writer, bufSize int, header bool) (chan<- tagger.TaggedRead, <-chan error, error) {
	switch format {
	case FormatFastq:
		in, done := StartFastqWriter(out, bufSize)
		return in, done, nil
	case FormatTSV:
		in, done := StartTSVWriter(out, bufSize, header)
		return in, done, nil
	case FormatJSONL:
		in, done := StartJSONLWriter(out, bufSize)
		return in, done, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}
}

// start runs the shared writer loop: buffered output, one write callback
// per read, flush on channel close.
func start(out io.Writer, bufSize int, write func(*bufio.Writer, tagger.TaggedRead) error) (chan<- tagger.TaggedRead, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan tagger.TaggedRead, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		for read := range in {
			if err := write(bw, read); err != nil {
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()
	return in, done
}
