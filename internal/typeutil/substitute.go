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

// Substitute returns a new term equal to term with every free
// occurrence of variable v replaced by replacement. It is pure: it
// never consults a UnionFind, and never mutates term.
func Substitute(term, v, replacement types.Type) types.Type {
	switch t := term.(type) {
	case *types.Var, *types.Alpha:
		if types.Equal(t, v) {
			return replacement
		}
		return t

	case *types.Cons:
		children := make([]types.Type, len(t.Children))
		for i, c := range t.Children {
			children[i] = Substitute(c, v, replacement)
		}
		return types.NewCons(t.Name, children...)

	case *types.Mu:
		if types.Equal(t.Bound, v) {
			// v is shadowed by this binder.
			return t
		}
		return &types.Mu{Bound: t.Bound, Body: Substitute(t.Body, v, replacement)}

	default:
		panic("typeutil: unreachable type variant in Substitute")
	}
}
