package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualVar(t *testing.T) {
	h1, h2 := "x", "y"
	assert.True(t, Equal(NewVar(h1), NewVar(h1)), "same handle, different instances")
	assert.False(t, Equal(NewVar(h1), NewVar(h2)))
	assert.False(t, Equal(NewVar(h1), NewAlpha(h1)), "different variants, same handle")
}

func TestEqualAlpha(t *testing.T) {
	assert.True(t, Equal(NewAlpha(1), NewAlpha(1)))
	assert.False(t, Equal(NewAlpha(1), NewAlpha(2)))
}

func TestEqualCons(t *testing.T) {
	a := NewCons("ptr", NewVar(1))
	b := NewCons("ptr", NewVar(1))
	assert.True(t, Equal(a, b), "structurally equal, separately allocated")
	assert.False(t, Equal(a, NewCons("ptr", NewVar(2))))
	assert.False(t, Equal(a, NewCons("box", NewVar(1))), "name mismatch")
	assert.False(t, Equal(NewCons("int"), NewCons("int", NewVar(1))), "arity mismatch")
}

func TestEqualMu(t *testing.T) {
	a := &Mu{Bound: NewAlpha(1), Body: NewCons("ptr", NewAlpha(1))}
	b := &Mu{Bound: NewAlpha(1), Body: NewCons("ptr", NewAlpha(1))}
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, &Mu{Bound: NewAlpha(2), Body: NewCons("ptr", NewAlpha(1))}))
}

func TestDoMatch(t *testing.T) {
	assert.True(t, NewCons("fun", NewVar(1)).DoMatch(NewCons("fun", NewVar(2))), "doMatch ignores children")
	assert.False(t, NewCons("fun", NewVar(1)).DoMatch(NewCons("box", NewVar(1))))
	assert.False(t, NewCons("fun", NewVar(1)).DoMatch(NewCons("fun", NewVar(1), NewVar(2))))
}

func TestIsVariable(t *testing.T) {
	assert.True(t, IsVariable(NewVar(1)))
	assert.True(t, IsVariable(NewAlpha(1)))
	assert.False(t, IsVariable(NewCons("int")))
	assert.False(t, IsVariable(&Mu{Bound: NewAlpha(1), Body: NewCons("int")}))
}

func TestStringDeterministic(t *testing.T) {
	typ := NewCons("ptr", NewVar(1))
	assert.Equal(t, typ.String(), typ.String())
}
