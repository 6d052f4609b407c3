// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package memfsa is a tiny in-memory byte trie satisfying the
// stemming.Node/stemming.Arc contract. It exists only to give the
// stemming package's tests and its cmd/morphstem demo something concrete
// to walk; it is not a dictionary compiler and makes no attempt at the
// minimization a real Daciuk-style FSA construction performs.
//
// The per-node child table is grounded on the byte-indexed child arrays
// of gaissmai/bart's trie nodes (getChild(uint8), allChildren) and the
// node/arc-cache shape of GoSkrafl's DAWG reader; unlike a map, indexing
// children by byte value keeps arc enumeration order deterministic
// (ascending by label), which stemming.Walker.EnumerateAccepted requires
// to be stable for a given FSA.
package memfsa

import (
	"iter"
	"sort"

	"github.com/morfologik/stemming-go/stemming"
)

type arc struct {
	final bool
	dest  *node
}

func (a *arc) IsFinal() bool              { return a.final }
func (a *arc) Destination() stemming.Node { return a.dest }

type node struct {
	children [256]*arc
}

func (n *node) ArcByLabel(b byte) (stemming.Arc, bool) {
	a := n.children[b]
	if a == nil {
		return nil, false
	}
	return a, true
}

func (n *node) Arcs() iter.Seq2[byte, stemming.Arc] {
	return func(yield func(byte, stemming.Arc) bool) {
		for label := 0; label < len(n.children); label++ {
			a := n.children[label]
			if a == nil {
				continue
			}
			if !yield(byte(label), a) {
				return
			}
		}
	}
}

func newNode() *node { return &node{} }

// FSA is an insert-only byte trie root.
type FSA struct {
	root *node
}

// New returns an empty FSA.
func New() *FSA {
	return &FSA{root: newNode()}
}

// Root returns the FSA's entry node, suitable as the start node passed to
// stemming.Walker.Match.
func (f *FSA) Root() stemming.Node { return f.root }

// Insert adds record as an accepted byte string, marking the arc for its
// final byte as final. Inserting the same record twice is a no-op.
func (f *FSA) Insert(record []byte) {
	cur := f.root
	for i, b := range record {
		a := cur.children[b]
		if a == nil {
			a = &arc{dest: newNode()}
			cur.children[b] = a
		}
		if i == len(record)-1 {
			a.final = true
		}
		cur = a.dest
	}
}

// InsertSorted inserts records in byte-lexicographic order, matching the
// construction discipline a real FSA compiler (e.g. Daciuk's) requires of
// its input, even though this trie itself tolerates any insertion order.
func (f *FSA) InsertSorted(records [][]byte) {
	sorted := append([][]byte(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		return string(sorted[i]) < string(sorted[j])
	})
	for _, r := range sorted {
		f.Insert(r)
	}
}
