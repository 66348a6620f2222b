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

// Package log provides the solver's tracing facility: a discard-by-
// default *slog.Logger plus lazy value wrappers so that a type term is
// only rendered to a string when a handler actually emits the record.
package log

import (
	"io"
	"log/slog"

	"github.com/AnushkaIdamekorala/tipc/types"
)

// Discard is the default logger for a Unifier: tracing is opt-in, per
// the solver's contract that log output is not part of its public API.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Type wraps a types.Type as a slog.LogValuer, so printing only
// happens when a record is actually handled.
func Type(t types.Type) slog.LogValuer { return typeValuer{t} }

type typeValuer struct{ t types.Type }

func (v typeValuer) LogValue() slog.Value {
	if v.t == nil {
		return slog.StringValue("<nil>")
	}
	return slog.StringValue(v.t.String())
}
