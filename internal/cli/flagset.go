// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"bartseq/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: tag and demultiplex barcoded amplicon reads

Scans each read for a known barcode (up to one substitution), splits it
into junk / barcode / linker / amplicon, and reports ambiguous barcodes.

Version: %s

Usage of %s (read files may also be given as positional args, globs ok):
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
