// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package stemming

import "iter"

// Node is a single state of the caller-supplied finite-state automaton.
// Implementations are owned by the FSA container; this package never
// constructs, mutates or serializes a Node.
type Node interface {
	// ArcByLabel returns the outgoing arc labeled b, if any.
	ArcByLabel(b byte) (Arc, bool)

	// Arcs enumerates every outgoing arc of the node, keyed by label. The
	// iteration order is unspecified but must be stable for a given FSA.
	Arcs() iter.Seq2[byte, Arc]
}

// Arc is a single labeled transition between two Nodes.
type Arc interface {
	// IsFinal reports whether the byte string ending on this arc is itself
	// a complete, accepted record.
	IsFinal() bool

	// Destination returns the Node this arc leads to.
	Destination() Node
}

// WalkKind discriminates the outcome of a Walker.Match call.
type WalkKind int

const (
	// NoMatch is the zero value of WalkKind. Walker.Match never returns it:
	// a walk that diverges on the very first byte reports Mismatch with
	// Consumed 0, and an empty input reports PrematureEnd at the start node.
	NoMatch WalkKind = iota

	// ExactMatch means the walk consumed the full input and ended on a
	// final arc. Lookup never produces this outcome for well-formed
	// dictionary records (every stored surface is followed by a separator
	// arc, never final) but it is defined for completeness.
	ExactMatch

	// PrematureEnd means the walk consumed the full input and ended at an
	// interior (non-final) arc. This is the only outcome Lookup acts on.
	PrematureEnd

	// Mismatch means the walk found no arc for some input byte before the
	// input was exhausted.
	Mismatch
)

// WalkResult is the outcome of a single Walker.Match call.
type WalkResult struct {
	Kind WalkKind

	// Node is populated for PrematureEnd (the node where input was
	// exhausted) and for Mismatch (the node where the walk diverged).
	Node Node

	// Consumed is the number of input bytes successfully matched before a
	// Mismatch. It is the index of the byte for which no arc existed.
	Consumed int
}

// Walker walks a byte-labeled FSA one byte at a time. It holds no state of
// its own and is safe to share; the zero value is ready to use.
type Walker struct{}

// Match walks input one byte at a time from start, following ArcByLabel.
func (Walker) Match(input []byte, start Node) WalkResult {
	node := start
	for i, b := range input {
		arc, ok := node.ArcByLabel(b)
		if !ok {
			return WalkResult{Kind: Mismatch, Node: node, Consumed: i}
		}
		if i == len(input)-1 {
			if arc.IsFinal() {
				return WalkResult{Kind: ExactMatch, Node: arc.Destination()}
			}
			return WalkResult{Kind: PrematureEnd, Node: arc.Destination()}
		}
		node = arc.Destination()
	}
	// Empty input: no arc has been traversed, so finality is undetermined.
	return WalkResult{Kind: PrematureEnd, Node: start}
}

// EnumerateAccepted lazily yields every byte string accepted by a path
// starting at node, one per accepting path. The sequence is finite,
// non-restartable, and each yielded slice is freshly allocated. Order is
// unspecified but stable for a given FSA, per the dictionary compiler's
// determinism guarantee.
func (w Walker) EnumerateAccepted(node Node) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		var walk func(n Node, prefix []byte) bool
		walk = func(n Node, prefix []byte) bool {
			for label, arc := range n.Arcs() {
				next := append(append([]byte{}, prefix...), label)
				if arc.IsFinal() {
					if !yield(next) {
						return false
					}
				}
				if !walk(arc.Destination(), next) {
					return false
				}
			}
			return true
		}
		walk(node, nil)
	}
}
