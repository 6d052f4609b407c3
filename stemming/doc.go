// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package stemming implements lookup and encoding for FSA-backed
// morphological dictionaries in the style of Daciuk's finite-state
// automaton stemmer.
//
// A dictionary stores records of the form:
//
//	surface ∥ sep ∥ delta ∥ sep ∥ tag
//
// where surface is the inflected form as it appears in text, delta is a
// short byte code describing how to transform surface into the canonical
// lemma, and tag is a morphosyntactic annotation. Lookup walks a caller
// supplied finite-state automaton to the node reached by surface, then
// decodes each stored delta relative to it. DeltaCodec is the inverse:
// given (surface, lemma) it computes the delta under the standard, prefix
// or infix scheme, whichever encoder the caller invokes; it does not
// compare the schemes against each other.
//
// The package does not construct, serialize or traverse the on-disk FSA
// container itself; that is supplied by the caller through the Node and
// Arc interfaces in fsa.go. It also performs no ranking, fuzzy matching
// or prefix/substring search, and a Lookup's decode buffer is not safe
// for concurrent use — callers wanting parallel lookups construct one
// Lookup per goroutine over the same read-only FSA and Features.
package stemming
