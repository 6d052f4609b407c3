// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import (
	"fmt"
	"hash/crc32"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/hashutil"
)

// Features is the immutable configuration block a dictionary ships
// alongside its FSA: the declared charset, the record separator byte, and
// which delta schemes are in play. It corresponds to the ".info" Features
// file an external dictionary loader is expected to parse.
type Features struct {
	Encoding     string
	Separator    byte
	UsesPrefixes bool
	UsesInfixes  bool

	charset charset
}

// NewFeatures validates and constructs a Features block. An unresolvable
// encoding name is a construction-time configuration error, always
// returned and never recovered. UsesInfixes implicitly forces
// UsesPrefixes: an infix record only makes sense once prefixes are live.
func NewFeatures(encoding string, separator byte, usesPrefixes, usesInfixes bool) (Features, error) {
	cs, err := resolveCharset(encoding)
	if err != nil {
		return Features{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if usesInfixes {
		usesPrefixes = true
	}
	return Features{
		Encoding:     cs.name,
		Separator:    separator,
		UsesPrefixes: usesPrefixes,
		UsesInfixes:  usesInfixes,
		charset:      cs,
	}, nil
}

// FeaturesFromMap builds a Features block from the four recognized keys of
// a parsed Features file: "encoding", "separator", "usesPrefixes",
// "usesInfixes".
func FeaturesFromMap(m map[string]string) (Features, error) {
	encoding, ok := m["encoding"]
	if !ok || encoding == "" {
		return Features{}, fmt.Errorf("%w: missing \"encoding\"", ErrConfig)
	}
	sepStr, ok := m["separator"]
	if !ok || len(sepStr) != 1 {
		return Features{}, fmt.Errorf("%w: \"separator\" must be exactly one byte", ErrConfig)
	}
	return NewFeatures(encoding, sepStr[0], m["usesPrefixes"] == "true", m["usesInfixes"] == "true")
}

// flagBits packs the scheme flags into a single byte using manual bit
// arithmetic, mirroring the LUT-building style of dsnet-compress's own
// internal/common.go; it exists so Fingerprint and String have a stable,
// compact representation to hash and print instead of the full struct.
func (f Features) flagBits() []byte {
	buf := make([]byte, 1)
	if f.UsesPrefixes {
		buf[0] |= 1 << 0
	}
	if f.UsesInfixes {
		buf[0] |= 1 << 1
	}
	return buf
}

// String renders a compact, loggable form of the configuration. The flag
// byte is read back through bits.Get rather than the raw bitmask, so the
// rendering exercises the same package a dictionary loader would use to
// inspect a packed flag byte read off disk.
func (f Features) String() string {
	buf := f.flagBits()
	return fmt.Sprintf("Features{encoding=%s separator=%q prefixes=%t infixes=%t}",
		f.Encoding, f.Separator, bits.Get(buf, 0), bits.Get(buf, 1))
}

// Fingerprint is a stable CRC32 identifier for this configuration, used to
// correlate a construction-time configuration error with a specific
// dictionary without logging the whole struct. It combines the CRC of the
// encoding name with the CRC of the separator+flags tail via
// hashutil.CombineCRC32, the same combinator dsnet-compress's bzip2 package
// uses to join adjacent block CRCs.
func (f Features) Fingerprint() uint32 {
	head := []byte(f.Encoding)
	tail := append([]byte{f.Separator}, f.flagBits()...)
	crc1 := crc32.ChecksumIEEE(head)
	crc2 := crc32.ChecksumIEEE(tail)
	return hashutil.CombineCRC32(crc32.IEEE, crc1, crc2, int64(len(tail)))
}
