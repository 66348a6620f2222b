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

// tipc provides a Hindley-Milner-style type solver for the TIP family
// of languages.
//
// Given a set of type equality constraints produced by a front-end,
// Unifier decides whether they are simultaneously satisfiable via
// union-find over type terms and, if so, reifies an inferred, fully
// closed type for any type variable of interest. TIP permits
// recursive types (a heap cell that points to itself, e.g. a linked
// list), so closure detects recursion during reification and
// introduces an explicit recursive-type binder (Mu) exactly where
// needed.
//
// Only the solver core lives here: the parser, the AST, the
// constraint generator that walks an AST and emits equality
// constraints, pretty-printing beyond the type model's own String,
// and any downstream consumer are all out of scope. An AST node's
// identity is consumed only as an opaque types.Handle attached to
// fresh type variables.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// TIP, a language for teaching static analysis: https://github.com/cs-au-dk/TIP
package tipc
