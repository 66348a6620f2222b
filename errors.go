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

	"github.com/pkg/errors"

	"github.com/AnushkaIdamekorala/tipc/types"
)

// UnifyErrorKind classifies why unification failed.
type UnifyErrorKind int

const (
	// UnifyMismatch: two constructors with different names or
	// arities were required equal.
	UnifyMismatch UnifyErrorKind = iota
	// UnifyShape: a shape combination the solver refuses, such as a
	// Mu appearing directly in a constraint.
	UnifyShape
)

func (k UnifyErrorKind) String() string {
	switch k {
	case UnifyMismatch:
		return "mismatch"
	case UnifyShape:
		return "shape"
	default:
		return "unknown"
	}
}

// UnificationError is returned by Unifier.Solve on the first
// irreconcilable constraint. It names both originally-requested terms
// and both of their representatives at the time of failure.
type UnificationError struct {
	Kind       UnifyErrorKind
	T1, T2     types.Type
	Rep1, Rep2 types.Type
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf(
		"cannot unify %s and %s (respective roots are: %s and %s)",
		e.T1, e.T2, e.Rep1, e.Rep2,
	)
}

// misuseError panics with a wrapped, stack-traced error for
// programmer errors: calling Inferred before Solve, or calling Solve
// more than once. There is no recoverable path for these: the caller
// has violated the Unifier's state machine.
func misuseError(format string, args ...any) {
	panic(errors.WithStack(fmt.Errorf(format, args...)))
}
