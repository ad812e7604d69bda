// core/tagger/tagger_test.go
package tagger

import (
	"reflect"
	"testing"

	"bartseq-core/barcode"
)

func mustTagger(t *testing.T, list []barcode.Barcode, cfg Config) *Tagger {
	t.Helper()
	tg, err := New(list, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return tg
}

func TestTagSegmentation(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}},
		Config{LinkerLen: 2, PrimerLen: 4, MaxMismatch: 0, Stats: true})

	read := tg.Tag("r1", "GGAAAACCGGTT", "IIIIIIIIIIII")
	want := TaggedRead{
		Header:    "r1",
		Qual:      "IIIIIIIIIIII",
		PrimerLen: 4,
		Junk:      "GG",
		Barcode:   "BC1",
		Linker:    "CC",
		Amplicon:  "GGTT",
	}
	if !reflect.DeepEqual(read, want) {
		t.Fatalf("Tag = %+v, want %+v", read, want)
	}
	if got := tg.Stats().Count(StatJunk); got != 1 {
		t.Errorf("%s = %d, want 1", StatJunk, got)
	}
	if got := tg.Stats().Count(StatJustPrimer); got != 1 {
		t.Errorf("%s = %d, want 1 (amplicon length 4 <= primer 4)", StatJustPrimer, got)
	}
}

func TestTagNoBarcode(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}},
		Config{LinkerLen: 2, PrimerLen: 4, MaxMismatch: 1, Stats: true})

	read := tg.Tag("r1", "CCCCGGGG", "IIIIIIII")
	if read.HasBarcode() || read.Junk != "" || read.Linker != "" {
		t.Fatalf("unexpected segmentation: %+v", read)
	}
	if read.Amplicon != "CCCCGGGG" {
		t.Errorf("amplicon = %q, want the whole read", read.Amplicon)
	}
	if read.BarcodeMismatch || len(read.OtherBarcodes) != 0 {
		t.Errorf("unexpected flags: %+v", read)
	}
	for name, n := range tg.Stats().Counts() {
		wantN := uint64(0)
		if name == StatNoBarcode {
			wantN = 1
		}
		if n != wantN {
			t.Errorf("%s = %d, want %d", name, n, wantN)
		}
	}
}

func TestTagMismatchFlag(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}},
		Config{LinkerLen: 0, PrimerLen: 0, MaxMismatch: 1})

	// Only the one-substitution variant AATA occurs.
	read := tg.Tag("r1", "CCAATACC", "IIIIIIII")
	if read.Barcode != "BC1" {
		t.Fatalf("barcode = %q, want BC1", read.Barcode)
	}
	if !read.BarcodeMismatch {
		t.Error("expected mismatch flag for a variant match")
	}

	exact := tg.Tag("r2", "AAAACC", "IIIIII")
	if exact.BarcodeMismatch {
		t.Error("exact match must not set the mismatch flag")
	}

	// With junk ahead of an exact barcode, the variant absorbing the last
	// junk base ends one position earlier and wins as primary. Inherited
	// leftmost-ending behavior.
	quirk := tg.Tag("r3", "CCAAAACC", "IIIIIIII")
	if quirk.Junk != "C" || !quirk.BarcodeMismatch {
		t.Errorf("leftmost-ending primary changed: junk=%q mismatch=%t", quirk.Junk, quirk.BarcodeMismatch)
	}
}

func TestTagPrimaryIsLeftmostEnding(t *testing.T) {
	// SHORT ends at offset 4, LONG at offset 5: SHORT wins as primary even
	// though LONG starts earlier. Inherited behavior, kept on purpose.
	tg := mustTagger(t, []barcode.Barcode{{ID: "LONG", Seq: "ACGTT"}, {ID: "SHORT", Seq: "CGT"}},
		Config{LinkerLen: 0, PrimerLen: 0, MaxMismatch: 0})

	read := tg.Tag("r1", "ACGTTGG", "IIIIIII")
	if read.Barcode != "SHORT" {
		t.Fatalf("primary = %q, want SHORT (leftmost-ending)", read.Barcode)
	}
	if !reflect.DeepEqual(read.OtherBarcodes, []string{"LONG"}) {
		t.Errorf("other barcodes = %v, want [LONG]", read.OtherBarcodes)
	}
	if read.Junk != "A" {
		t.Errorf("junk = %q, want %q", read.Junk, "A")
	}
}

func TestTagMultipleBarcodes(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "X", Seq: "AAAA"}, {ID: "Y", Seq: "TTTT"}},
		Config{LinkerLen: 2, PrimerLen: 4, MaxMismatch: 0, Stats: true})

	read := tg.Tag("r1", "AAAACCTTTTGGGG", "IIIIIIIIIIIIII")
	if read.Barcode != "X" {
		t.Fatalf("primary = %q, want X", read.Barcode)
	}
	if !reflect.DeepEqual(read.OtherBarcodes, []string{"Y"}) {
		t.Fatalf("other barcodes = %v, want [Y]", read.OtherBarcodes)
	}
	if !read.HasMultipleBarcodes() {
		t.Error("HasMultipleBarcodes = false")
	}
	if got := tg.Stats().Count(StatMultipleBarcodes); got != 1 {
		t.Errorf("%s = %d, want 1", StatMultipleBarcodes, got)
	}
	// A repeat of the primary barcode elsewhere is not "another" barcode.
	again := tg.Tag("r2", "AAAACCAAAA", "IIIIIIIIII")
	if len(again.OtherBarcodes) != 0 {
		t.Errorf("repeat of primary counted as other: %v", again.OtherBarcodes)
	}
}

func TestTagShortReadTruncation(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}},
		Config{LinkerLen: 4, PrimerLen: 0, MaxMismatch: 0})

	// Read ends inside the linker window: linker is clipped, amplicon empty.
	read := tg.Tag("r1", "AAAACC", "IIIIII")
	if read.Linker != "CC" {
		t.Errorf("linker = %q, want clipped %q", read.Linker, "CC")
	}
	if read.Amplicon != "" {
		t.Errorf("amplicon = %q, want empty", read.Amplicon)
	}
	if !read.IsJustPrimer() {
		t.Error("empty amplicon should classify as just-primer")
	}
}

func TestTagIntoShards(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}},
		Config{LinkerLen: 0, PrimerLen: 0, MaxMismatch: 0})

	a, b := NewStats(), NewStats()
	tg.TagInto(a, "r1", "AAAAGG", "IIIIII")
	tg.TagInto(b, "r2", "CCCCCC", "IIIIII")
	a.Merge(b)
	if got := a.Count(StatRegular); got != 1 {
		t.Errorf("%s = %d, want 1", StatRegular, got)
	}
	if got := a.Count(StatNoBarcode); got != 1 {
		t.Errorf("%s = %d, want 1", StatNoBarcode, got)
	}
}

func TestNewConfigErrors(t *testing.T) {
	list := []barcode.Barcode{{ID: "BC1", Seq: "AAAA"}}
	if _, err := New(list, Config{MaxMismatch: 2}); err == nil {
		t.Error("budget 2 must fail construction")
	}
	if _, err := New(list, Config{LinkerLen: -1}); err == nil {
		t.Error("negative linker length must fail construction")
	}
	if _, err := New(list, Config{PrimerLen: -1}); err == nil {
		t.Error("negative primer length must fail construction")
	}
}

func TestTaggerExposesCollisions(t *testing.T) {
	tg := mustTagger(t, []barcode.Barcode{{ID: "X", Seq: "AAAA"}, {ID: "Y", Seq: "AAAT"}},
		Config{MaxMismatch: 1})
	if len(tg.Collisions()) == 0 {
		t.Fatal("expected collision records")
	}
	if len(tg.Blacklist()) != 4 {
		t.Errorf("blacklist size = %d, want 4", len(tg.Blacklist()))
	}
	if tg.Sequences()["X"] != "AAAA" {
		t.Errorf("Sequences()[X] = %q", tg.Sequences()["X"])
	}
}
