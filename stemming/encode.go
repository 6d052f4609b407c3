// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"bytes"
	"unicode/utf8"
)

type deltaScheme func(w, m []byte) ([]byte, error)

// StandardEncode computes the standard-scheme record for (form, lemma,
// tag) under f's declared charset and separator.
func StandardEncode(form, lemma, tag string, f Features) (string, error) {
	return compose(standardEncodeDelta, form, lemma, tag, f)
}

// PrefixEncode computes the prefix-scheme record.
func PrefixEncode(form, lemma, tag string, f Features) (string, error) {
	return compose(prefixEncodeDelta, form, lemma, tag, f)
}

// InfixEncode computes the infix-scheme record.
func InfixEncode(form, lemma, tag string, f Features) (string, error) {
	return compose(infixEncodeDelta, form, lemma, tag, f)
}

// compose encodes form/lemma/tag through f's charset, runs scheme to get
// the delta body, and assembles surface ∥ sep ∥ delta ∥ sep ∥ tag.
func compose(scheme deltaScheme, form, lemma, tag string, f Features) (string, error) {
	w, err := f.charset.encode(form)
	if err != nil {
		return "", ErrCharset
	}
	m, err := f.charset.encode(lemma)
	if err != nil {
		return "", ErrCharset
	}
	t, err := f.charset.encode(tag)
	if err != nil {
		return "", ErrCharset
	}
	if err := checkNoSeparator(f.Separator, w, m, t); err != nil {
		return "", err
	}
	delta, err := scheme(w, m)
	if err != nil {
		return "", err
	}
	return assembleRecordString(f, w, delta, t)
}

// checkNoSeparator enforces that sep does not occur inside any of parts
// (the encoded surface, lemma and tag). The delta is not checked: its
// literal ending is a slice of the lemma, which is checked here, but its
// control bytes (ctrlBase and above) are never compared against sep.
func checkNoSeparator(sep byte, parts ...[]byte) error {
	for _, p := range parts {
		if bytes.IndexByte(p, sep) >= 0 {
			return Error("separator byte present in surface, lemma or tag")
		}
	}
	return nil
}

func assembleRecordString(f Features, w, delta, t []byte) (string, error) {
	rec := make([]byte, 0, len(w)+1+len(delta)+1+len(t))
	rec = append(rec, w...)
	rec = append(rec, f.Separator)
	rec = append(rec, delta...)
	rec = append(rec, f.Separator)
	rec = append(rec, t...)
	s, err := f.charset.decode(rec)
	if err != nil {
		return "", ErrCharset
	}
	return s, nil
}

// StandardEncodeUTF8 is the UTF-8 round-trip shim for StandardEncode: it
// treats form/lemma/tag as UTF-8 text whose raw bytes are the dictionary's
// actual on-disk byte layout, bypassing f's configured charset for the
// text itself while still using f.Separator. This is the construction
// morfologik-stemming's encoders use to keep byte counts and "character"
// counts coincident when building UTF-8 dictionaries with an encoder that
// otherwise assumes one byte-per-character.
func StandardEncodeUTF8(form, lemma, tag string, f Features) (string, error) {
	return composeUTF8(standardEncodeDelta, form, lemma, tag, f)
}

// PrefixEncodeUTF8 is the UTF-8 shim for PrefixEncode.
func PrefixEncodeUTF8(form, lemma, tag string, f Features) (string, error) {
	return composeUTF8(prefixEncodeDelta, form, lemma, tag, f)
}

// InfixEncodeUTF8 is the UTF-8 shim for InfixEncode.
func InfixEncodeUTF8(form, lemma, tag string, f Features) (string, error) {
	return composeUTF8(infixEncodeDelta, form, lemma, tag, f)
}

func composeUTF8(scheme deltaScheme, form, lemma, tag string, f Features) (string, error) {
	w := []byte(form)
	m := []byte(lemma)
	t := []byte(tag)
	if err := checkNoSeparator(f.Separator, w, m, t); err != nil {
		return "", err
	}
	delta, err := scheme(w, m)
	if err != nil {
		return "", err
	}
	rec := make([]byte, 0, len(w)+1+len(delta)+1+len(t))
	rec = append(rec, w...)
	rec = append(rec, f.Separator)
	rec = append(rec, delta...)
	rec = append(rec, f.Separator)
	rec = append(rec, t...)
	if !utf8.Valid(rec) {
		return "", ErrCharset
	}
	return string(rec), nil
}
