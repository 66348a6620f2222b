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

// Package construct offers short-hand constructors for building type
// terms and constraints, for use by callers and by tests.
package construct

import "github.com/AnushkaIdamekorala/tipc/types"

// TVar creates a type variable for the given handle.
func TVar(h types.Handle) *types.Var { return types.NewVar(h) }

// TAlpha creates an alpha variable for the given handle.
func TAlpha(h types.Handle) *types.Alpha { return types.NewAlpha(h) }

// TCons creates a type constructor: `int`, `ptr(T)`, `fun(T1,...,Tn)`, etc.
func TCons(name string, children ...types.Type) *types.Cons {
	return types.NewCons(name, children...)
}

// TPtr is the one-argument `ptr(T)` constructor, used throughout the
// TIP recursive-type examples.
func TPtr(of types.Type) *types.Cons { return TCons("ptr", of) }

// TFun builds a `fun(T1,...,Tn) -> Tr` constructor: the last child is
// the return type, the rest are argument types, in order.
func TFun(args []types.Type, ret types.Type) *types.Cons {
	children := make([]types.Type, 0, len(args)+1)
	children = append(children, args...)
	children = append(children, ret)
	return TCons("fun", children...)
}

// TMu builds a `Mu(bound, body)` recursive-type binder.
func TMu(bound types.Type, body types.Type) *types.Mu {
	return &types.Mu{Bound: bound, Body: body}
}

// Eq creates an equality constraint between lhs and rhs.
func Eq(lhs, rhs types.Type) types.Constraint {
	return types.Constraint{LHS: lhs, RHS: rhs}
}
