// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "github.com/cpmech/gosl/chk"

// LoopDepot owns the L fundamental cycles plus the P pseudo-loops of a
// Network, where L=|E|-|V|+1 and P=(number of pressure-fixed nodes)-1
// (spec §3, §4.1)
type LoopDepot struct {
	Loops       []*Loop // fundamental cycles
	Pseudoloops []*Loop // open chains between pressure-fixed nodes
}

// NewLoopDepot enumerates the cycle basis and pseudo-loop set of net
// (spec §4.1). Both the cycle and pseudo-loop searches share the same
// DFS-with-backtracking shape: pop a candidate starting element, extend by
// matching the chain's last free node to an unused element's Start (+1) or
// End (-1), and accept on the mode-specific closure condition
func NewLoopDepot(net *Network) (*LoopDepot, error) {
	nLoops := len(net.Elements) - len(net.Nodes) + 1
	if nLoops < 0 {
		nLoops = 0
	}
	loops, err := enumerateCycles(net, nLoops)
	if err != nil {
		return nil, err
	}

	fixed := pressureFixedNodes(net)
	nPseudo := len(fixed) - 1
	if nPseudo < 0 {
		nPseudo = 0
	}
	var pseudos []*Loop
	if nPseudo > 0 {
		pseudos, err = enumeratePseudoloops(net, fixed, nPseudo)
		if err != nil {
			return nil, err
		}
	}

	if nLoops == 0 && nPseudo == 0 {
		return nil, chk.Err("network has no fundamental cycles and no pseudo-loops; cannot form a solvable system")
	}

	return &LoopDepot{Loops: loops, Pseudoloops: pseudos}, nil
}

func pressureFixedNodes(net *Network) []*Node {
	var out []*Node
	for _, n := range net.Nodes {
		if n.IsPressureFixed() {
			out = append(out, n)
		}
	}
	return out
}

// enumerateCycles implements spec §4.1 "Mode = loop"
func enumerateCycles(net *Network, want int) ([]*Loop, error) {
	loops := make([]*Loop, 0, want)
	if want == 0 {
		return loops, nil
	}

	pool := make([]int, len(net.Elements))
	for i := range pool {
		pool[i] = i
	}

	for size := 3; len(loops) < want; size++ {
		if size > 2*len(net.Elements)+1 {
			return loops, chk.Err("could not enumerate %d fundamental loops (found %d); graph may be disconnected", want, len(loops))
		}
		progressed := true
		for progressed && len(loops) < want {
			progressed = false
			for _, startIdx := range pool {
				buf := []LoopMember{{Element: net.Elements[startIdx], Orientation: +1}}
				used := map[int]bool{startIdx: true}
				found := dfsCycle(net, buf, used, size, loops)
				if found == nil {
					continue
				}
				loops = append(loops, found)
				pool = removeElements(pool, found)
				progressed = true
				break
			}
		}
	}
	return loops, nil
}

func dfsCycle(net *Network, buf []LoopMember, used map[int]bool, size int, existing []*Loop) *Loop {
	if len(buf) == size {
		l := &Loop{Members: append([]LoopMember(nil), buf...)}
		if !l.IsClosed() {
			return nil
		}
		for _, e := range existing {
			if sameElementSet(e, l) {
				return nil
			}
		}
		return l
	}
	lastFree := buf[len(buf)-1].exitNode()
	for idx, el := range net.Elements {
		if used[idx] {
			continue
		}
		var orient int8
		switch lastFree.ID {
		case el.Start.ID:
			orient = +1
		case el.End.ID:
			orient = -1
		default:
			continue
		}
		used[idx] = true
		buf = append(buf, LoopMember{Element: el, Orientation: orient})
		if res := dfsCycle(net, buf, used, size, existing); res != nil {
			return res
		}
		buf = buf[:len(buf)-1]
		delete(used, idx)
	}
	return nil
}

// enumeratePseudoloops implements spec §4.1 "Mode = pseudo-loop". A star/Y
// topology's master node may carry only a single incident element, so each
// master link is re-driven through dfsPseudo repeatedly (not just once):
// every successful chain excludes its terminal node via usedEndpoints,
// forcing the next DFS from the same link to backtrack onto a different
// branch, until either want chains are found or that link is exhausted
func enumeratePseudoloops(net *Network, fixed []*Node, want int) ([]*Loop, error) {
	master := fixed[0]
	usedEndpoints := map[int]bool{master.ID: true}
	result := make([]*Loop, 0, want)

	for _, link := range master.Links {
		if len(result) >= want {
			break
		}
		startIdx := link.Element.ID - 1
		for len(result) < want {
			buf := []LoopMember{{Element: link.Element, Orientation: link.Orientation}}
			used := map[int]bool{startIdx: true}
			pl := dfsPseudo(net, buf, used, usedEndpoints)
			if pl == nil {
				break
			}
			result = append(result, pl)
			usedEndpoints[pl.LastFree().ID] = true
		}
	}
	if len(result) < want {
		return result, chk.Err("could not enumerate %d pseudo-loops (found %d)", want, len(result))
	}
	return result, nil
}

func dfsPseudo(net *Network, buf []LoopMember, used map[int]bool, usedEndpoints map[int]bool) *Loop {
	lastFree := buf[len(buf)-1].exitNode()
	if lastFree.IsPressureFixed() && !usedEndpoints[lastFree.ID] {
		return &Loop{Members: append([]LoopMember(nil), buf...), Pseudo: true}
	}
	for idx, el := range net.Elements {
		if used[idx] {
			continue
		}
		var orient int8
		switch lastFree.ID {
		case el.Start.ID:
			orient = +1
		case el.End.ID:
			orient = -1
		default:
			continue
		}
		used[idx] = true
		buf = append(buf, LoopMember{Element: el, Orientation: orient})
		if res := dfsPseudo(net, buf, used, usedEndpoints); res != nil {
			return res
		}
		buf = buf[:len(buf)-1]
		delete(used, idx)
	}
	return nil
}

func removeElements(pool []int, l *Loop) []int {
	remove := l.ElementSet()
	out := pool[:0]
	for _, idx := range pool {
		if !remove[idx+1] {
			out = append(out, idx)
		}
	}
	return out
}
