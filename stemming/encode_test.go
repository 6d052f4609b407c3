// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"strings"
	"testing"
)

// End-to-end scenario at the public API level: a word that is its own
// lemma encodes to a single-byte "keep everything" delta.
func TestStandardEncodePublicScenario(t *testing.T) {
	f := mustFeatures(t, false, false)
	got, err := StandardEncode("werk", "werk", "N", f)
	if err != nil {
		t.Fatalf("StandardEncode: %v", err)
	}
	if want := "werk+A+N"; got != want {
		t.Errorf("StandardEncode = %q, want %q", got, want)
	}
}

// Separator safety: exactly two separator bytes appear in an encoded
// record, provided the inputs themselves contain none.
func TestSeparatorSafety(t *testing.T) {
	f := mustFeatures(t, true, true)
	encoders := []func(string, string, string, Features) (string, error){
		StandardEncode, PrefixEncode, InfixEncode,
	}
	for _, enc := range encoders {
		rec, err := enc("najniebieszy", "niebieski", "ADJ", f)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		if n := strings.Count(rec, "+"); n != 2 {
			t.Errorf("record %q has %d separators, want 2", rec, n)
		}
	}
}

func TestEncodeRejectsSeparatorInInput(t *testing.T) {
	f := mustFeatures(t, false, false)
	if _, err := StandardEncode("a+b", "ab", "N", f); err == nil {
		t.Error("expected error when surface contains the separator byte")
	}
}

func TestUTF8ShimRoundTrip(t *testing.T) {
	f := mustFeatures(t, true, true)
	rec, err := StandardEncodeUTF8("wörk", "wörk", "N", f)
	if err != nil {
		t.Fatalf("StandardEncodeUTF8: %v", err)
	}
	if n := strings.Count(rec, "+"); n != 2 {
		t.Fatalf("record %q has %d separators, want 2", rec, n)
	}
	parts := strings.SplitN(rec, "+", 3)
	if parts[0] != "wörk" || parts[2] != "N" {
		t.Fatalf("record = %q, surface/tag did not survive the shim", rec)
	}
}

func TestInvalidEncodingRejectedAtConstruction(t *testing.T) {
	if _, err := NewFeatures("ebcdic", '+', false, false); err == nil {
		t.Error("expected ErrConfig for an unresolvable charset name")
	}
}

func TestUsesInfixesForcesUsesPrefixes(t *testing.T) {
	f, err := NewFeatures("UTF-8", '+', false, true)
	if err != nil {
		t.Fatalf("NewFeatures: %v", err)
	}
	if !f.UsesPrefixes {
		t.Error("UsesInfixes=true should force UsesPrefixes=true")
	}
}
