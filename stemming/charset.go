// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"strings"
	"unicode/utf8"
)

// charset converts between Go strings and the byte layout a dictionary's
// declared encoding uses on disk. Only the two encodings morfologik-style
// dictionaries actually ship with are supported: a variable-byte UTF-8
// charset, and a family of single-byte charsets where one byte is one
// character (ISO-8859-1 being the common case).
type charset struct {
	name       string
	singleByte bool
}

var charsets = map[string]charset{
	"utf-8":      {name: "UTF-8", singleByte: false},
	"iso-8859-1": {name: "ISO-8859-1", singleByte: true},
}

var charsetAliases = map[string]string{
	"utf8":       "utf-8",
	"utf-8":      "utf-8",
	"iso-8859-1": "iso-8859-1",
	"iso8859-1":  "iso-8859-1",
	"latin1":     "iso-8859-1",
	"latin-1":    "iso-8859-1",
}

// resolveCharset maps a Features.Encoding name to a charset, or reports a
// configuration error if the name is unrecognized.
func resolveCharset(name string) (charset, error) {
	key, ok := charsetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return charset{}, Error("unresolvable charset: " + name)
	}
	return charsets[key], nil
}

// encode converts a Go (UTF-8) string into the byte layout of this charset.
// For UTF-8 charsets this is simply []byte(s). For single-byte charsets it
// requires every rune to fit in one byte (0-255); runes outside that range
// surface as ErrCharset.
func (c charset) encode(s string) ([]byte, error) {
	if !c.singleByte {
		return []byte(s), nil
	}
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, ErrCharset
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// decode is the inverse of encode: for single-byte charsets each input
// byte is its own Unicode code point (ISO-8859-1 is identity-mapped onto
// U+0000-U+00FF), so it must be written with WriteRune, not WriteByte, to
// come out as valid UTF-8 in the returned Go string.
func (c charset) decode(b []byte) (string, error) {
	if !c.singleByte {
		if !utf8.Valid(b) {
			return "", ErrCharset
		}
		return string(b), nil
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for _, x := range b {
		sb.WriteRune(rune(x))
	}
	return sb.String(), nil
}
