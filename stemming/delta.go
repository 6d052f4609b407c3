// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import "github.com/dsnet/golib/errs"

const (
	// ctrlBase is the ASCII value of the control alphabet's zero point.
	ctrlBase = 'A'

	// maxControlValue is the largest value a control byte can carry once
	// shifted by ctrlBase without leaving the single-byte range.
	maxControlValue = 255 - ctrlBase

	// maxPrefixLen bounds both the prefix-scheme skip and the infix-scheme
	// interior-deletion search.
	maxPrefixLen = 3
)

// commonPrefixLen returns the length in bytes of the longest common prefix
// of a and b (Testable Property 8: equals the largest k with a[:k]==b[:k]).
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// ctrlByte shifts v into the control alphabet, refusing to silently wrap
// past a single byte: overflow is reported to the caller as an explicit
// error rather than masked by wrapping.
func ctrlByte(v int) (byte, error) {
	if v < 0 || v > maxControlValue {
		return 0, ErrOverflow
	}
	return byte(v + ctrlBase), nil
}

// scanSkip searches skip in [1, limit] (clamped to len(w)-base) for the
// smallest value such that the common prefix of w[base+skip:] and m exceeds
// 2 bytes. It is the shared scan behind both the prefix scheme's leading
// skip and the infix scheme's interior-deletion length: prefixEncode calls
// it with base=0 against the whole lemma, infixEncode calls it with
// base=p against the lemma's tail beyond the already-matched prefix.
func scanSkip(w, m []byte, base, limit int) (skip, cp int) {
	max := limit
	if avail := len(w) - base; avail < max {
		max = avail
	}
	for s := 1; s <= max; s++ {
		c := commonPrefixLen(w[base+s:], m)
		if c > 2 {
			return s, c
		}
	}
	return 0, 0
}

// standardEncodeDelta computes the standard-scheme delta: a single control
// byte encoding how many trailing bytes of w to strip, followed by the
// literal suffix of m beyond the common prefix.
func standardEncodeDelta(w, m []byte) ([]byte, error) {
	p := commonPrefixLen(w, m)
	k, err := ctrlByte(len(w) - p)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(m)-p)
	out = append(out, k)
	out = append(out, m[p:]...)
	return out, nil
}

// prefixEncodeDelta computes the prefix-scheme delta.
func prefixEncodeDelta(w, m []byte) ([]byte, error) {
	if commonPrefixLen(w, m) > 0 {
		delta, err := standardEncodeDelta(w, m)
		if err != nil {
			return nil, err
		}
		return append([]byte{ctrlBase}, delta...), nil
	}

	if skip, p1 := scanSkip(w, m, 0, maxPrefixLen); skip > 0 {
		l, err := ctrlByte(skip)
		if err != nil {
			return nil, err
		}
		k, err := ctrlByte(len(w) - skip - p1)
		if err != nil {
			return nil, err
		}
		out := []byte{l, k}
		out = append(out, m[p1:]...)
		return out, nil
	}

	k, err := ctrlByte(len(w))
	if err != nil {
		return nil, err
	}
	out := []byte{ctrlBase, k}
	out = append(out, m...)
	return out, nil
}

// infixEncodeDelta computes the infix-scheme delta, selecting among a
// leading-skip candidate and an interior-deletion candidate.
//
// A commonly cited worked example for form="ABXYCDE"/lemma="ABCDE" gives
// j*=1, delta="CBA", but that does not round-trip under the decode formula
// below. This implementation follows the round-trip law as the
// authoritative invariant instead, which for that form/lemma pair yields
// j*=2, delta="CCA" — see delta_test.go.
func infixEncodeDelta(w, m []byte) ([]byte, error) {
	p := commonPrefixLen(w, m)
	iStar, p1 := scanSkip(w, m, 0, maxPrefixLen)

	if p > 0 {
		var jStar, p2 int
		if len(w) > p {
			jStar, p2 = scanSkip(w, m[p:], p, maxPrefixLen)
		}
		switch {
		case iStar > jStar && p1 > p:
			return assembleInfix(0, iStar, len(w)-iStar-p1, m[p1:])
		case jStar > 0 && p2 > 0:
			return assembleInfix(p, jStar, len(w)-p-p2-jStar, m[p+p2:])
		default:
			return assembleInfix(0, 0, len(w)-p, m[p:])
		}
	}

	if iStar > 0 {
		return assembleInfix(0, iStar, len(w)-iStar-p1, m[p1:])
	}
	return assembleInfix(0, 0, len(w), m)
}

// assembleInfix builds the M·L·K·ending record from raw (pre-shift) offsets.
func assembleInfix(m0, l0, k0 int, ending []byte) ([]byte, error) {
	m, err := ctrlByte(m0)
	if err != nil {
		return nil, err
	}
	l, err := ctrlByte(l0)
	if err != nil {
		return nil, err
	}
	k, err := ctrlByte(k0)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 3+len(ending))
	out = append(out, m, l, k)
	out = append(out, ending...)
	return out, nil
}

// decodeDelta reconstructs a lemma from delta relative to surface w, per
// the scheme configuration in features. dst is reused as the output
// buffer (appended to from dst[:0]) so a caller holding a long-lived
// scratch buffer never allocates on the steady-state path; Lookup owns
// one such buffer across repeated calls. Guard failures (malformed
// control bytes) degrade gracefully to returning delta verbatim; they
// never panic past this function.
func decodeDelta(dst, delta, w []byte, features Features) []byte {
	if len(delta) == 0 {
		return dst[:0]
	}
	out, err := decodeDeltaGuarded(dst, delta, w, features)
	if err != nil {
		return append(dst[:0], delta...)
	}
	return out
}

func decodeDeltaGuarded(dst, delta, w []byte, features Features) (out []byte, err error) {
	defer errs.Recover(&err)

	l := len(w)
	k := int(delta[0]) - ctrlBase
	out = dst[:0]

	switch {
	case features.UsesInfixes:
		errs.Assert(len(delta) >= 3 && k >= 0, errMalformed)
		a := int(delta[1]) - ctrlBase
		b := int(delta[2]) - ctrlBase
		errs.Assert(a >= 0 && b >= 0 && k <= l && k+a <= l && b <= l && k+a <= l-b, errMalformed)
		out = append(out, w[:k]...)
		out = append(out, w[k+a:l-b]...)
		out = append(out, delta[3:]...)
		return out, nil

	case features.UsesPrefixes:
		errs.Assert(len(delta) >= 2 && k >= 0, errMalformed)
		s := int(delta[1]) - ctrlBase
		errs.Assert(s >= 0 && s <= l && k <= l && k <= l-s, errMalformed)
		out = append(out, w[k:l-s]...)
		out = append(out, delta[2:]...)
		return out, nil

	default:
		errs.Assert(k >= 0 && k <= l, errMalformed)
		out = append(out, w[:l-k]...)
		out = append(out, delta[1:]...)
		return out, nil
	}
}
