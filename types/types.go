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

// Package types defines the TIP type-term model: type variables, reified
// alphas, fixed-arity constructors, and recursive-type binders.
package types

// Handle identifies the program point (normally an AST node) a type
// variable is associated with. The solver never dereferences a handle;
// it only compares handles for equality and uses them as map keys, so
// callers must pass a comparable value (a pointer, an integer id, ...).
type Handle = any

// Type is the base interface implemented by every term in the model:
// Var, Alpha, Cons, and Mu. The set of variants is closed; see Equal
// and the closer's panic on an unrecognized variant.
type Type interface {
	TypeName() string
	String() string
}

// Var is a type variable associated with a program point. Two Vars are
// the same variable iff they carry the same Handle.
type Var struct {
	handle Handle
}

// NewVar creates a type variable for the given handle.
func NewVar(h Handle) *Var { return &Var{handle: h} }

func (v *Var) Handle() Handle { return v.handle }

// Alpha is a named variable introduced by closure to reify an
// otherwise-unconstrained or cyclic type variable. Like Var, two Alphas
// are the same variable iff they carry the same Handle.
type Alpha struct {
	handle Handle
}

// NewAlpha creates an alpha bound to the given handle.
func NewAlpha(h Handle) *Alpha { return &Alpha{handle: h} }

func (a *Alpha) Handle() Handle { return a.handle }

// Cons is a named, fixed-arity type constructor, e.g. int, ptr(T),
// fun(T1,...,Tn)->Tr, or record{f1:T1,...}. Arity is the length of
// Children. Two separately-allocated Cons values with identical shape
// are distinct terms for union-find purposes (see internal/typeutil);
// Equal and DoMatch compare by value, not identity.
type Cons struct {
	Name     string
	Children []Type
}

// NewCons creates a constructor application.
func NewCons(name string, children ...Type) *Cons {
	return &Cons{Name: name, Children: children}
}

// DoMatch reports whether c and other share the same name and arity.
// It does not look at children.
func (c *Cons) DoMatch(other *Cons) bool {
	return c.Name == other.Name && len(c.Children) == len(other.Children)
}

// Mu is a recursive-type binder: Mu(V, body) denotes the type equal to
// its own substitution body[V := Mu(V, body)]. Bound is always a *Var
// or *Alpha.
type Mu struct {
	Bound Type
	Body  Type
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Alpha) TypeName() string { return "Alpha" }
func (t *Cons) TypeName() string  { return "Cons" }
func (t *Mu) TypeName() string    { return "Mu" }

// Equal reports whether a and b are structurally equal: same variant,
// and for Var/Alpha the handles match, for Cons the names and all
// children recursively match, and for Mu the bound variables and
// bodies match.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && av.handle == bv.handle
	case *Alpha:
		bv, ok := b.(*Alpha)
		return ok && av.handle == bv.handle
	case *Cons:
		bv, ok := b.(*Cons)
		if !ok || !av.DoMatch(bv) {
			return false
		}
		for i := range av.Children {
			if !Equal(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	case *Mu:
		bv, ok := b.(*Mu)
		return ok && Equal(av.Bound, bv.Bound) && Equal(av.Body, bv.Body)
	default:
		panic("types: unreachable type variant in Equal")
	}
}

// IsVariable reports whether t is variable-shaped, i.e. a *Var or an
// *Alpha. Both are treated the same way by unification.
func IsVariable(t Type) bool {
	switch t.(type) {
	case *Var, *Alpha:
		return true
	default:
		return false
	}
}

// Constraint asserts that LHS and RHS denote the same type.
type Constraint struct {
	LHS, RHS Type
}
