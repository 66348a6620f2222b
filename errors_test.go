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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnushkaIdamekorala/tipc/construct"
)

func TestUnifyErrorKindString(t *testing.T) {
	assert.Equal(t, "mismatch", UnifyMismatch.String())
	assert.Equal(t, "shape", UnifyShape.String())
}

func TestUnificationErrorNamesBothTermsAndReps(t *testing.T) {
	t1 := construct.TCons("int")
	t2 := construct.TPtr(construct.TVar("V1"))
	r1 := construct.TCons("bool")
	r2 := construct.TCons("record")
	err := &UnificationError{Kind: UnifyMismatch, T1: t1, T2: t2, Rep1: r1, Rep2: r2}
	msg := err.Error()
	assert.Contains(t, msg, t1.String())
	assert.Contains(t, msg, t2.String())
	assert.Contains(t, msg, r1.String())
	assert.Contains(t, msg, r2.String())
}
