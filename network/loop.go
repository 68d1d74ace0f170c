// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// LoopMember is one (element, orientation) pair in a Loop's chain.
// Orientation is +1 if the element is traversed Start->End, -1 if End->Start
type LoopMember struct {
	Element     *Element
	Orientation int8
}

// entryNode is the node the chain enters this member from (the "first
// free" node of a length-1 chain)
func (m LoopMember) entryNode() *Node {
	if m.Orientation > 0 {
		return m.Element.Start
	}
	return m.Element.End
}

// exitNode is the node the chain leaves this member towards (the "last
// free" node after appending this member)
func (m LoopMember) exitNode() *Node {
	if m.Orientation > 0 {
		return m.Element.End
	}
	return m.Element.Start
}

// Loop is an ordered, chain-linked sequence of (element, orientation) pairs
// of fixed capacity (spec §3). A closed Loop is a fundamental cycle; an
// open one whose two free ends are both pressure-fixed nodes is a
// pseudo-loop. Cycles start with orientation +1 on their first element;
// pseudo-loops start with whichever orientation makes the master node the
// entry node of Members[0], so FirstFree is always the master node
type Loop struct {
	Members []LoopMember
	Pseudo  bool
}

// FirstFree returns the node at the very start of the chain
func (l *Loop) FirstFree() *Node {
	return l.Members[0].entryNode()
}

// LastFree returns the node at the very end of the chain
func (l *Loop) LastFree() *Node {
	return l.Members[len(l.Members)-1].exitNode()
}

// IsClosed reports whether the chain's last free node coincides with its
// first free node, i.e. whether it is a genuine cycle rather than an open
// chain (spec §3)
func (l *Loop) IsClosed() bool {
	return l.LastFree().ID == l.FirstFree().ID
}

// ElementSet returns the set of element ids (1-based) this loop traverses,
// used for the orientation/rotation-independent uniqueness check (spec §4.1)
func (l *Loop) ElementSet() map[int]bool {
	set := make(map[int]bool, len(l.Members))
	for _, m := range l.Members {
		set[m.Element.ID] = true
	}
	return set
}

// sameElementSet reports whether two loops traverse exactly the same set of
// elements, ignoring orientation and rotation
func sameElementSet(a, b *Loop) bool {
	sa, sb := a.ElementSet(), b.ElementSet()
	if len(sa) != len(sb) {
		return false
	}
	for id := range sa {
		if !sb[id] {
			return false
		}
	}
	return true
}

// OrientationOf returns the signed orientation this loop gives to element e,
// or 0 if e is not a member of this loop
func (l *Loop) OrientationOf(e *Element) int8 {
	for _, m := range l.Members {
		if m.Element.ID == e.ID {
			return m.Orientation
		}
	}
	return 0
}
