// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"bytes"
	"fmt"
	"strings"
)

// Lookup orchestrates matching a surface word against a caller-supplied
// FSA, enumerating the records stored beyond the matched separator arc,
// and decoding each one's delta into a lemma. A Lookup owns a reusable
// scratch buffer for decoding; it is not safe for concurrent use — each
// goroutine wanting concurrent lookups constructs its own Lookup over the
// same read-only root and Features.
type Lookup struct {
	root     Node
	features Features
	walker   Walker
	scratch  []byte
}

// NewLookup constructs a Lookup over root using features. Both are
// borrowed for the Lookup's lifetime and must remain immutable; a nil
// root is a construction-time configuration error.
func NewLookup(root Node, features Features) (*Lookup, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil FSA root", ErrConfig)
	}
	return &Lookup{root: root, features: features}, nil
}

// Stem returns the lemmas stored for word, or an empty (nil) slice if the
// FSA has no entry for it. A charset round-trip failure is returned as an
// error; "no match" is not an error.
func (l *Lookup) Stem(word string) ([]string, error) {
	return l.lookup(word, false)
}

// StemAndForm returns lemmas interleaved with their tags:
// [lemma1, tag1, lemma2, tag2, ...].
func (l *Lookup) StemAndForm(word string) ([]string, error) {
	return l.lookup(word, true)
}

// StemIgnoreCase retries Stem with a lowercased form of word (strings.ToLower,
// which lowercases all Unicode letters, not only ASCII) if the
// exact surface has no entry. This mirrors the convenience
// case-normalizing lookup layer morfologik-stemming ships outside its FSA
// stemmer core; it performs no ranking between the two attempts, it
// simply prefers the exact-case result when both exist.
func (l *Lookup) StemIgnoreCase(word string) ([]string, error) {
	lemmas, err := l.Stem(word)
	if err != nil || len(lemmas) > 0 {
		return lemmas, err
	}
	lower := strings.ToLower(word)
	if lower == word {
		return lemmas, nil
	}
	return l.Stem(lower)
}

func (l *Lookup) lookup(word string, returnForms bool) ([]string, error) {
	wordBytes, err := l.features.charset.encode(word)
	if err != nil {
		return nil, ErrCharset
	}

	result := l.walker.Match(wordBytes, l.root)
	if result.Kind != PrematureEnd {
		return nil, nil
	}

	sepArc, ok := result.Node.ArcByLabel(l.features.Separator)
	if !ok || sepArc.IsFinal() {
		// Either no delta body was stored for this surface, or the FSA is
		// malformed in a way that should never occur in a well-formed
		// dictionary (an arc immediately final right after the
		// separator). Both degrade to "no result", never a panic.
		return nil, nil
	}

	var out []string
	for rec := range l.walker.EnumerateAccepted(sepArc.Destination()) {
		deltaPart, tagPart := splitOnSeparator(rec, l.features.Separator)

		l.scratch = decodeDelta(l.scratch, deltaPart, wordBytes, l.features)
		lemma, err := l.features.charset.decode(l.scratch)
		if err != nil {
			return nil, ErrCharset
		}
		out = append(out, lemma)

		if returnForms {
			tag, err := l.features.charset.decode(tagPart)
			if err != nil {
				return nil, ErrCharset
			}
			out = append(out, tag)
		}
	}
	return out, nil
}

// splitOnSeparator finds the first occurrence of sep in rec and returns
// the delta and tag halves. If sep is absent, the whole record is the
// delta and the tag is empty.
func splitOnSeparator(rec []byte, sep byte) (delta, tag []byte) {
	j := bytes.IndexByte(rec, sep)
	if j < 0 {
		return rec, nil
	}
	return rec[:j], rec[j+1:]
}
