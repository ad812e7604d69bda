// core/barcode/expand_test.go
package barcode

import "testing"

func TestVariantsCount(t *testing.T) {
	tests := []struct {
		seq  string
		mm   int
		want int
	}{
		{"A", 0, 1},
		{"A", 1, 4},
		{"ACGT", 1, 13},
		{"AAAAAAAA", 1, 25},
	}
	for _, tc := range tests {
		got, err := Variants(tc.seq, tc.mm)
		if err != nil {
			t.Fatalf("Variants(%q,%d): %v", tc.seq, tc.mm, err)
		}
		if len(got) != tc.want {
			t.Errorf("Variants(%q,%d) = %d strings, want %d", tc.seq, tc.mm, len(got), tc.want)
		}
		if got[0] != tc.seq {
			t.Errorf("Variants(%q,%d)[0] = %q, want the original first", tc.seq, tc.mm, got[0])
		}
		for _, v := range got {
			if len(v) != len(tc.seq) {
				t.Errorf("variant %q has length %d, want %d", v, len(v), len(tc.seq))
			}
		}
	}
}

func TestVariantsDistinctAndComplete(t *testing.T) {
	got, err := Variants("ACG", 1)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]struct{}, len(got))
	for _, v := range got {
		if _, dup := seen[v]; dup {
			t.Errorf("variant %q produced twice", v)
		}
		seen[v] = struct{}{}
	}
	// Spot-check one substitution per position; order within a position is
	// unspecified, membership is not.
	for _, want := range []string{"TCG", "ATG", "ACT"} {
		if _, ok := seen[want]; !ok {
			t.Errorf("variant %q missing", want)
		}
	}
}

func TestVariantsPositionMajor(t *testing.T) {
	got, err := Variants("AC", 1)
	if err != nil {
		t.Fatal(err)
	}
	// got[1:4] substitute position 0, got[4:7] position 1.
	for _, v := range got[1:4] {
		if v[1] != 'C' {
			t.Errorf("variant %q should only differ at position 0", v)
		}
	}
	for _, v := range got[4:7] {
		if v[0] != 'A' {
			t.Errorf("variant %q should only differ at position 1", v)
		}
	}
}

func TestVariantsBadBudget(t *testing.T) {
	for _, mm := range []int{-1, 2, 5} {
		if _, err := Variants("ACGT", mm); err == nil {
			t.Errorf("Variants(_, %d): expected error", mm)
		}
	}
}
