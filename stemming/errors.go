// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "stemming: " + string(e) }

var (
	// ErrConfig reports a construction-time configuration problem: a missing
	// FSA root or an unresolvable charset name. Inconsistent scheme flags are
	// not an error: NewFeatures turns UsesPrefixes on whenever UsesInfixes is set.
	// It is fatal and always returned to the caller of the constructor,
	// never recovered.
	ErrConfig error = Error("invalid configuration")

	// ErrCharset reports that the declared encoding rejected a surface, delta
	// or tag byte sequence at runtime. This indicates the Features encoding
	// is mismatched against a live dictionary and is always surfaced.
	ErrCharset error = Error("charset round-trip failure")

	// ErrOverflow reports that a computed control value would not fit in a
	// single control byte (value > 190, see maxControlValue). Encoders
	// refuse to emit a silently wrapped control byte.
	ErrOverflow error = Error("control value exceeds single-byte range")

	// errMalformed is never returned to a caller. It is the sentinel panicked
	// internally by the decoder's errs.Assert guards and recovered at the
	// decode entry point into the graceful "return delta verbatim" fallback.
	// It exists only so recover can distinguish an expected guard failure
	// from an unrelated panic.
	errMalformed error = Error("malformed delta code")
)
