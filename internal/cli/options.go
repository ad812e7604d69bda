// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"bartseq/internal/cliutil"
)

// Output formats for tagged reads.
const (
	OutputFastq = "fastq"
	OutputTSV   = "tsv"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	BarcodeFile string
	ReadFiles   []string

	// Segmentation parameters
	LinkerLen  int
	PrimerLen  int
	Mismatches int

	// Performance
	Threads int

	// Output
	Output    string
	Header    bool // true unless --no-header (tsv)
	Report    string
	StatsJSON string
	Quiet     bool

	Version bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.BarcodeFile, "barcodes", "", "TSV barcode file: id<TAB>sequence [*]")
	var reads stringSlice
	fs.Var(&reads, "reads", "FASTQ file(s), gzip ok (repeatable or '-') [*]")

	// Segmentation parameters
	fs.IntVar(&opt.LinkerLen, "linker-length", 0, "linker length following the barcode [0]")
	fs.IntVar(&opt.PrimerLen, "primer-length", 0, "primer length for the just-primer check [0]")
	fs.IntVar(&opt.Mismatches, "mismatches", 1, "max substitutions per barcode: 0 or 1 [1]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputFastq, "output format: fastq | tsv | jsonl ["+OutputFastq+"]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in tsv output [false]")
	fs.StringVar(&opt.Report, "report", "", "write HTML barcode-collision report to file")
	fs.StringVar(&opt.StatsJSON, "stats-json", "", "write classification statistics to file as JSON")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress collision warnings and the stats summary [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.ReadFiles = append([]string(reads), pos...)
	opt.Header = !noHeader

	// Validation
	if opt.BarcodeFile == "" {
		return opt, errors.New("--barcodes is required")
	}
	if len(opt.ReadFiles) == 0 {
		return opt, errors.New("at least one read file is required (--reads or positional)")
	}
	if opt.Mismatches < 0 || opt.Mismatches > 1 {
		return opt, errors.New("--mismatches must be 0 or 1")
	}
	if opt.LinkerLen < 0 {
		return opt, errors.New("--linker-length must be >= 0")
	}
	if opt.PrimerLen < 0 {
		return opt, errors.New("--primer-length must be >= 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.Output != OutputFastq && opt.Output != OutputTSV && opt.Output != OutputJSONL {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
