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
	"fmt"

	"github.com/AnushkaIdamekorala/tipc/internal/log"
	"github.com/AnushkaIdamekorala/tipc/internal/typeutil"
	"github.com/AnushkaIdamekorala/tipc/types"
)

// close reifies t's equivalence class into a ground type, introducing
// a Mu binder wherever a variable's own closure cycles back through
// itself. visited tracks the Var/Alpha terms already on the current
// descent path, so a variable re-encountered along its own path closes
// to a fresh Alpha instead of recursing forever.
func (u *Unifier) close(t types.Type, visited *typeutil.VarSet) types.Type {
	switch t := t.(type) {
	case *types.Var:
		return u.closeVar(t, visited)
	case *types.Alpha:
		return u.closeVar(t, visited)
	case *types.Cons:
		return u.closeCons(t, visited)
	case *types.Mu:
		return &types.Mu{Bound: t.Bound, Body: u.close(t.Body, visited)}
	default:
		panic(fmt.Sprintf("tipc: unreachable type variant %T in close", t))
	}
}

// closeVar implements the variable case. v is a *types.Var or
// *types.Alpha.
func (u *Unifier) closeVar(v types.Type, visited *typeutil.VarSet) types.Type {
	r := u.uf.Find(v)
	u.logger.Debug("close variable", "v", log.Type(v), "rep", log.Type(r))

	if visited.Contains(v) || types.Equal(r, v) {
		// Either v cycles back through itself, or its class has no
		// further information (a class of one): reify as a fresh,
		// unconstrained alpha.
		return types.NewAlpha(handleOf(v))
	}

	closedR := u.close(r, visited.WithAdded(v))

	newV := v
	if _, ok := v.(*types.Alpha); !ok {
		newV = types.NewAlpha(handleOf(v))
	}

	free := typeutil.Collect(closedR)
	if free.Contains(newV) {
		substituted := typeutil.Substitute(closedR, v, newV)
		mu := &types.Mu{Bound: newV, Body: substituted}
		u.logger.Debug("close variable done", "v", log.Type(v), "result", log.Type(mu))
		return mu
	}
	u.logger.Debug("close variable done", "v", log.Type(v), "result", log.Type(closedR))
	return closedR
}

// closeCons implements the constructor case: every free variable in
// c is closed and substituted into c's arguments, one variable at a
// time, each pass folding its substitution over the result of the
// previous pass. This mirrors the source's nested close/substitute
// loop exactly, including recomputing each free variable's closure
// once per argument rather than once per variable -- see the
// accumulation-pattern note in DESIGN.md. c's Children are updated in
// place, matching Cons.setArguments in the source; the returned value
// is c itself.
func (u *Unifier) closeCons(c *types.Cons, visited *typeutil.VarSet) types.Type {
	u.logger.Debug("close constructor", "c", log.Type(c))

	free := typeutil.Collect(c)
	current := c.Children
	free.Range(func(v types.Type) bool {
		next := make([]types.Type, 0, len(current))
		for _, a := range current {
			closedV := u.close(v, visited)
			next = append(next, typeutil.Substitute(a, v, closedV))
		}
		current = next
		return true
	})
	c.Children = current

	u.logger.Debug("close constructor done", "c", log.Type(c))
	return c
}

func handleOf(v types.Type) types.Handle {
	switch v := v.(type) {
	case *types.Var:
		return v.Handle()
	case *types.Alpha:
		return v.Handle()
	default:
		panic(fmt.Sprintf("tipc: handleOf called on non-variable type %T", v))
	}
}
