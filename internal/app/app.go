// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/xopen"
	"github.com/sirupsen/logrus"

	"bartseq-core/barcode"
	"bartseq-core/tagger"

	"bartseq/internal/cli"
	"bartseq/internal/jsonutil"
	"bartseq/internal/pipeline"
	"bartseq/internal/report"
	"bartseq/internal/version"
	"bartseq/internal/writers"
)

// RunContext parses argv, builds the tagger, and streams every read from
// the input files through it. Exit codes: 0 ok, 2 usage/configuration,
// 3 runtime, 130 cancelled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("bartseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bartseq version %s\n", version.Version)
		return 0
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.Quiet {
		log.SetLevel(logrus.ErrorLevel)
	}

	list, err := barcode.LoadTSV(opts.BarcodeFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	tg, err := tagger.New(list, tagger.Config{
		LinkerLen:   opts.LinkerLen,
		PrimerLen:   opts.PrimerLen,
		MaxMismatch: opts.Mismatches,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	for _, c := range tg.Collisions() {
		log.WithFields(logrus.Fields{
			"pattern":  c.Pattern,
			"barcodes": c.Previous + "/" + c.Current,
		}).Warn("ambiguous barcode pattern excluded from matching")
	}

	if opts.Report != "" {
		if err := writeReport(opts.Report, tg); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	inCh, writeErr, err := writers.Start(opts.Output, outw, 256, opts.Header)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Stop feeding the pipeline as soon as the writer dies mid-stream,
	// otherwise inCh fills up and the workers block forever.
	var werr error
	wdone := make(chan struct{})
	go func() {
		defer close(wdone)
		if werr = <-writeErr; werr != nil {
			cancel()
		}
	}()

	stats, total, perr := pipeline.ForEachRead(ctx,
		pipeline.Config{Threads: opts.Threads}, opts.ReadFiles, tg,
		func(r tagger.TaggedRead) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)
	<-wdone
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	log.Infof("%d reads processed", total)
	for _, name := range tagger.StatNames() {
		log.Infof("%-20s %d", name, stats.Count(name))
	}
	if opts.StatsJSON != "" {
		if err := writeStatsJSON(opts.StatsJSON, stats, total); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeReport(path string, tg *tagger.Tagger) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	return report.Write(w, tg.Blacklist(), tg.Sequences())
}

func writeStatsJSON(path string, stats *tagger.Stats, total int) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()
	return jsonutil.EncodePretty(fh, struct {
		Total  int               `json:"n_reads"`
		Counts map[string]uint64 `json:"counts"`
	}{Total: total, Counts: stats.Counts()})
}
