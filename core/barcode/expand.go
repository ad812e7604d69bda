// core/barcode/expand.go
package barcode

import "fmt"

var bases = [4]byte{'A', 'C', 'G', 'T'}

// Variants returns seq followed by every string reachable by substituting a
// single position with one of the three other bases: 1+3·len(seq) strings
// for budget 1, position-major. Budgets other than 0 and 1 are a
// configuration error.
func Variants(seq string, maxMM int) ([]string, error) {
	switch maxMM {
	case 0:
		return []string{seq}, nil
	case 1:
	default:
		return nil, fmt.Errorf("unsupported mismatch budget %d (must be 0 or 1)", maxMM)
	}
	out := make([]string, 0, 1+3*len(seq))
	out = append(out, seq)
	buf := []byte(seq)
	for i := range buf {
		orig := buf[i]
		for _, b := range bases {
			if b == orig {
				continue
			}
			buf[i] = b
			out = append(out, string(buf))
		}
		buf[i] = orig
	}
	return out, nil
}
