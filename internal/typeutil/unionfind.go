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

import "github.com/AnushkaIdamekorala/tipc/types"

// varKey identifies a *types.Var or *types.Alpha by its handle rather
// than by its own pointer, so that two separately-built Var terms for
// the same program variable collapse into a single union-find entry.
// Cons/Mu terms key by their own pointer (the zero value of varKey
// never collides with a pointer value, since it is a struct).
type varKey struct {
	alpha  bool
	handle types.Handle
}

func keyOf(t types.Type) any {
	switch t := t.(type) {
	case *types.Var:
		return varKey{alpha: false, handle: t.Handle()}
	case *types.Alpha:
		return varKey{alpha: true, handle: t.Handle()}
	default:
		return t
	}
}

type entry struct {
	term   types.Type
	parent any // key of the parent entry; nil if this entry is a root
}

// UnionFind is a disjoint-set structure over type terms. Variables are
// keyed by their handle (so references to the same program variable
// share one entry); Cons and Mu terms are keyed by their own identity,
// since two separately-allocated terms of identical shape are distinct
// entries.
type UnionFind struct {
	entries map[any]*entry
}

// NewUnionFind creates an empty union-find, optionally seeded with an
// initial set of terms (the Unifier seeds every LHS/RHS of its
// constraints, plus the immediate children of any top-level Cons).
func NewUnionFind(seed ...types.Type) *UnionFind {
	u := &UnionFind{entries: make(map[any]*entry, len(seed))}
	for _, t := range seed {
		u.Insert(t)
	}
	return u
}

// Insert ensures t has an entry. A new entry is the root of its own
// class; an existing entry is left as it is. Idempotent.
func (u *UnionFind) Insert(t types.Type) {
	k := keyOf(t)
	if _, ok := u.entries[k]; !ok {
		u.entries[k] = &entry{term: t}
	}
}

// root returns the key of t's class representative, compressing the
// path it walked to get there.
func (u *UnionFind) root(t types.Type) any {
	k := keyOf(t)
	e, ok := u.entries[k]
	if !ok {
		e = &entry{term: t}
		u.entries[k] = e
		return k
	}
	var path []any
	for e.parent != nil {
		path = append(path, k)
		k = e.parent
		e = u.entries[k]
	}
	for _, pk := range path {
		u.entries[pk].parent = k
	}
	return k
}

// Find returns the current representative term of t's class. Terms
// encountered for the first time are inserted lazily.
func (u *UnionFind) Find(t types.Type) types.Type {
	return u.entries[u.root(t)].term
}

// QuickUnion merges the class of a under the class of b: after the
// call, Find(a) == Find(b) == Find(b) as it was before the call.
func (u *UnionFind) QuickUnion(a, b types.Type) {
	ra, rb := u.root(a), u.root(b)
	if ra == rb {
		return
	}
	u.entries[ra].parent = rb
}
