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

package tipc

import (
	"log/slog"

	"github.com/AnushkaIdamekorala/tipc/internal/log"
	"github.com/AnushkaIdamekorala/tipc/internal/typeutil"
	"github.com/AnushkaIdamekorala/tipc/types"
)

// unifierState tracks the Unifier's lifecycle: Fresh -> Solving ->
// {Solved, Failed}. Solve may run at most once; Inferred is only valid
// once Solved.
type unifierState int

const (
	stateFresh unifierState = iota
	stateSolving
	stateSolved
	stateFailed
)

// Unifier consumes a set of type-equality constraints, drives a
// union-find over the type terms they mention, and answers queries
// for the closed, ground type of any variable once solving succeeds.
//
// A Unifier owns its union-find exclusively. Type terms passed into it
// are shared by reference and treated as logically immutable, except
// that the closer mutates a *types.Cons's Children slice in place (see
// close.go), matching the source's Cons.setArguments.
//
// Independent Unifiers share no state and may be driven from separate
// goroutines concurrently; a single Unifier is not itself safe for
// concurrent use, the same documented-but-unenforced contract as
// TypeEnv in the teacher lineage.
type Unifier struct {
	constraints []types.Constraint
	uf          *typeutil.UnionFind
	state       unifierState
	logger      *slog.Logger
}

// NewUnifier builds a Unifier for constraints. The union-find is
// pre-populated with every LHS, every RHS, and the immediate children
// of any top-level *types.Cons appearing in constraints; children
// introduced during recursive unification are inserted lazily on
// first Find.
func NewUnifier(constraints []types.Constraint, opts ...Option) *Unifier {
	u := &Unifier{
		constraints: constraints,
		logger:      log.Discard,
	}
	for _, opt := range opts {
		opt(u)
	}

	seed := make([]types.Type, 0, len(constraints)*2)
	for _, c := range constraints {
		seed = append(seed, c.LHS, c.RHS)
		if cons, ok := c.LHS.(*types.Cons); ok {
			seed = append(seed, cons.Children...)
		}
		if cons, ok := c.RHS.(*types.Cons); ok {
			seed = append(seed, cons.Children...)
		}
	}
	u.uf = typeutil.NewUnionFind(seed...)
	return u
}

// Solve runs unify on each constraint in input order. It returns the
// first *UnificationError encountered; on failure the union-find is
// left in an undefined state and the Unifier transitions to Failed.
// Solve may be called at most once.
func (u *Unifier) Solve() error {
	if u.state != stateFresh {
		misuseError("tipc: Solve called more than once")
	}
	u.state = stateSolving

	for _, c := range u.constraints {
		if err := u.unify(c.LHS, c.RHS); err != nil {
			u.state = stateFailed
			return err
		}
	}
	u.state = stateSolved
	return nil
}

// unify is the structural-unification step (spec.md S4.5). There is
// deliberately no occurs-check here: TIP admits recursive types, and
// cycles are handled structurally by close, not rejected here. Do not
// add one.
func (u *Unifier) unify(t1, t2 types.Type) error {
	r1, r2 := u.uf.Find(t1), u.uf.Find(t2)

	u.logger.Debug("unify", "t1", log.Type(t1), "t2", log.Type(t2), "rep1", log.Type(r1), "rep2", log.Type(r2))

	if types.Equal(r1, r2) {
		return nil
	}

	v1, v2 := types.IsVariable(r1), types.IsVariable(r2)

	switch {
	case v1 && v2:
		u.uf.QuickUnion(r1, r2)
		return nil

	case v1 && !v2:
		u.uf.QuickUnion(r1, r2)
		return nil

	case !v1 && v2:
		u.uf.QuickUnion(r2, r1)
		return nil
	}

	c1, ok1 := r1.(*types.Cons)
	c2, ok2 := r2.(*types.Cons)
	if !ok1 || !ok2 {
		return u.mismatch(UnifyShape, t1, t2, r1, r2)
	}
	if !c1.DoMatch(c2) {
		return u.mismatch(UnifyMismatch, t1, t2, r1, r2)
	}

	u.uf.QuickUnion(r1, r2)
	for i := range c1.Children {
		if err := u.unify(c1.Children[i], c2.Children[i]); err != nil {
			return err
		}
	}

	u.logger.Debug("unify done", "rep", log.Type(u.uf.Find(t1)))
	return nil
}

func (u *Unifier) mismatch(kind UnifyErrorKind, t1, t2, r1, r2 types.Type) error {
	return &UnificationError{Kind: kind, T1: t1, T2: t2, Rep1: r1, Rep2: r2}
}

// Inferred returns the closed type for v's equivalence class. It
// requires Solve to have completed successfully; calling it
// beforehand is a programmer error and panics (see misuseError).
func (u *Unifier) Inferred(v *types.Var) types.Type {
	if u.state != stateSolved {
		misuseError("tipc: Inferred called before Solve completed")
	}
	t := u.close(v, typeutil.NewVarSet())
	u.logger.Debug("inferred", "var", log.Type(v), "type", log.Type(t))
	return t
}
