// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"github.com/benbjohnson/immutable"

	"github.com/AnushkaIdamekorala/tipc/types"
)

// VarSet is an ordered, deduplicated collection of variable terms
// (*types.Var or *types.Alpha). Order is insertion order, which is
// what TypeVars.collect and the closer's cycle detection both require
// to be deterministic. It is backed by an immutable.List, the same
// persistent structure the teacher lineage (wdamron/poly) already
// depends on for its own TypeList/TypeMap.
type VarSet struct {
	list *immutable.List
	seen map[any]bool
}

// NewVarSet creates an empty VarSet.
func NewVarSet() *VarSet {
	return &VarSet{list: immutable.NewList(), seen: make(map[any]bool, 8)}
}

// Add inserts v if it is not already present. Reports whether v was
// newly added.
func (s *VarSet) Add(v types.Type) bool {
	k := keyOf(v)
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	s.list = s.list.Append(v)
	return true
}

// Contains reports whether v (compared by variable identity, i.e. by
// handle) is present in the set.
func (s *VarSet) Contains(v types.Type) bool {
	return s.seen[keyOf(v)]
}

// Len returns the number of distinct variables in the set.
func (s *VarSet) Len() int { return s.list.Len() }

// Range iterates the set in insertion order. If f returns false,
// iteration stops.
func (s *VarSet) Range(f func(v types.Type) bool) {
	it := s.list.Iterator()
	for !it.Done() {
		_, v := it.Next()
		if !f(v.(types.Type)) {
			return
		}
	}
}

// Slice returns the set's contents as a plain slice, in insertion
// order.
func (s *VarSet) Slice() []types.Type {
	out := make([]types.Type, 0, s.Len())
	s.Range(func(v types.Type) bool {
		out = append(out, v)
		return true
	})
	return out
}

// WithAdded returns a VarSet containing v plus every element of s,
// without mutating s. The closer's cycle-detection descent threads
// visited sets this way (value semantics, one copy per recursive
// call) rather than sharing one mutable set across sibling branches,
// matching the source's std::set passed by value into each close call.
func (s *VarSet) WithAdded(v types.Type) *VarSet {
	if s.Contains(v) {
		return s
	}
	seen := make(map[any]bool, len(s.seen)+1)
	for k := range s.seen {
		seen[k] = true
	}
	seen[keyOf(v)] = true
	return &VarSet{list: s.list.Append(v), seen: seen}
}

// Remove removes v from the set, if present. Used by Collect to
// implement TypeVars.collect(Mu(b, body)) = collect(body) \ {b}.
func (s *VarSet) Remove(v types.Type) {
	k := keyOf(v)
	if !s.seen[k] {
		return
	}
	delete(s.seen, k)
	b := immutable.NewListBuilder(immutable.NewList())
	it := s.list.Iterator()
	for !it.Done() {
		_, x := it.Next()
		if xt := x.(types.Type); keyOf(xt) != k {
			b.Append(xt)
		}
	}
	s.list = b.List()
}

// Collect gathers the set of variable terms occurring free in t.
// Mu(b, body) removes b from the collected set of body (invariant 7
// in the spec's testable properties).
func Collect(t types.Type) *VarSet {
	out := NewVarSet()
	collectInto(out, t)
	return out
}

func collectInto(out *VarSet, t types.Type) {
	switch t := t.(type) {
	case *types.Var, *types.Alpha:
		out.Add(t)

	case *types.Cons:
		for _, c := range t.Children {
			collectInto(out, c)
		}

	case *types.Mu:
		inner := Collect(t.Body)
		inner.Remove(t.Bound)
		inner.Range(func(v types.Type) bool {
			out.Add(v)
			return true
		})

	default:
		panic("typeutil: unreachable type variant in Collect")
	}
}
