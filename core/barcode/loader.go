// core/barcode/loader.go
package barcode

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV reads "id<TAB>sequence" lines. Blank lines and '#' comments are
// skipped; sequences are uppercased.
func LoadTSV(path string) ([]Barcode, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Barcode
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			return nil, fmt.Errorf("%s:%d bad field count (want id<TAB>sequence)", path, ln)
		}
		b := Barcode{ID: f[0], Seq: strings.ToUpper(f[1])}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%s:%d %v", path, ln, err)
		}
		list = append(list, b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
