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

package types

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// printing is deterministic and side-effect-free: it never mutates the
// term it prints, and two calls against structurally-equal terms always
// produce the same string. Alpha/Var names are assigned per-call, in
// the order they are first encountered, purely for display -- tests
// must compare terms with Equal, not with String, since the spec
// leaves alpha naming unspecified beyond "derived from the handle".

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[Handle]string, 8)}
	},
}

type typePrinter struct {
	sb    strings.Builder
	names map[Handle]string
}

func (p *typePrinter) release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

func (p *typePrinter) nameFor(prefix string, h Handle) string {
	if name, ok := p.names[h]; ok {
		return name
	}
	name := prefix + strconv.Itoa(len(p.names)+1)
	p.names[h] = name
	return name
}

func (t *Var) String() string   { return printType(t) }
func (t *Alpha) String() string { return printType(t) }
func (t *Cons) String() string  { return printType(t) }
func (t *Mu) String() string    { return printType(t) }

func printType(t Type) string {
	p := printerPool.Get().(*typePrinter)
	writeType(p, t)
	s := p.sb.String()
	p.release()
	return s
}

func writeType(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Var:
		p.sb.WriteString(p.nameFor("V", t.handle))

	case *Alpha:
		p.sb.WriteString(p.nameFor("α", t.handle))

	case *Cons:
		p.sb.WriteString(t.Name)
		if len(t.Children) == 0 {
			return
		}
		p.sb.WriteByte('(')
		for i, c := range t.Children {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			writeType(p, c)
		}
		p.sb.WriteByte(')')

	case *Mu:
		p.sb.WriteString("μ")
		writeType(p, t.Bound)
		p.sb.WriteString(". ")
		writeType(p, t.Body)

	default:
		panic(fmt.Sprintf("types: unreachable type variant %T in String", t))
	}
}
