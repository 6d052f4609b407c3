// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/morfologik/stemming-go/internal/memfsa"
)

func buildLookup(t *testing.T, f Features, records ...string) *Lookup {
	t.Helper()
	trie := memfsa.New()
	for _, r := range records {
		trie.Insert([]byte(r))
	}
	l, err := NewLookup(trie.Root(), f)
	if err != nil {
		t.Fatalf("NewLookup: %v", err)
	}
	return l
}

func TestLookupStemSingleEntry(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec, err := StandardEncode("werken", "werk", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	got, err := l.Stem("werken")
	if err != nil {
		t.Fatalf("Stem: %v", err)
	}
	if want := []string{"werk"}; !cmp.Equal(got, want) {
		t.Errorf("Stem(%q) = %v, want %v", "werken", got, want)
	}
}

func TestLookupStemAndForm(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec, err := StandardEncode("werken", "werk", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	got, err := l.StemAndForm("werken")
	if err != nil {
		t.Fatalf("StemAndForm: %v", err)
	}
	if want := []string{"werk", "V"}; !cmp.Equal(got, want) {
		t.Errorf("StemAndForm(%q) = %v, want %v", "werken", got, want)
	}
}

func TestLookupMultipleHomonyms(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec1, err := StandardEncode("bank", "bank", "N1", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	rec2, err := StandardEncode("bank", "bank", "N2", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec1, rec2)

	got, err := l.StemAndForm("bank")
	if err != nil {
		t.Fatalf("StemAndForm: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("StemAndForm(%q) = %v, want 4 entries (2 lemma/tag pairs)", "bank", got)
	}
	var tags []string
	for i := 1; i < len(got); i += 2 {
		tags = append(tags, got[i])
	}
	sort.Strings(tags)
	if want := []string{"N1", "N2"}; !cmp.Equal(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestLookupMiss(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec, err := StandardEncode("werken", "werk", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	got, err := l.Stem("xyzzy")
	if err != nil {
		t.Fatalf("Stem: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Stem(%q) = %v, want empty", "xyzzy", got)
	}
}

func TestLookupPrefixOfStoredWordIsNotAMatch(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec, err := StandardEncode("werken", "werk", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	got, err := l.Stem("werk")
	if err != nil {
		t.Fatalf("Stem: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Stem(%q) = %v, want empty (not an exact accepted word)", "werk", got)
	}
}

func TestLookupIgnoreCaseFallsBackToLower(t *testing.T) {
	f := mustFeatures(t, false, false)
	rec, err := StandardEncode("werken", "werk", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	got, err := l.StemIgnoreCase("WERKEN")
	if err != nil {
		t.Fatalf("StemIgnoreCase: %v", err)
	}
	if want := []string{"werk"}; !cmp.Equal(got, want) {
		t.Errorf("StemIgnoreCase(%q) = %v, want %v", "WERKEN", got, want)
	}
}

// The decode scratch buffer must be monotone-reusable: repeated calls
// against records of varying lemma length must never leak a longer
// lemma's trailing bytes into a shorter one's result.
func TestLookupScratchBufferReusedAcrossCalls(t *testing.T) {
	f := mustFeatures(t, false, false)
	long, err := StandardEncode("understanding", "understand", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	short, err := StandardEncode("go", "go", "V", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	l := buildLookup(t, f, long, short)

	if got, err := l.Stem("understanding"); err != nil || !cmp.Equal(got, []string{"understand"}) {
		t.Fatalf("Stem(understanding) = %v, %v", got, err)
	}
	got, err := l.Stem("go")
	if err != nil {
		t.Fatalf("Stem: %v", err)
	}
	if want := []string{"go"}; !cmp.Equal(got, want) {
		t.Errorf("Stem(go) after a longer call = %v, want %v", got, want)
	}
}

func TestLookupDeterministicRepeat(t *testing.T) {
	f := mustFeatures(t, true, true)
	rec, err := InfixEncode("ABXYCDE", "ABCDE", "N", f)
	if err != nil {
		t.Fatalf("InfixEncode: %v", err)
	}
	l := buildLookup(t, f, rec)

	first, err := l.Stem("ABXYCDE")
	if err != nil {
		t.Fatalf("Stem: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := l.Stem("ABXYCDE")
		if err != nil {
			t.Fatalf("Stem: %v", err)
		}
		if !cmp.Equal(first, again) {
			t.Fatalf("Stem not deterministic across repeats: %v vs %v", first, again)
		}
	}
}

func TestNewLookupRejectsNilRoot(t *testing.T) {
	f := mustFeatures(t, false, false)
	if _, err := NewLookup(nil, f); err == nil {
		t.Error("expected error for nil FSA root")
	}
}
