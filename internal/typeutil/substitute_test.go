package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnushkaIdamekorala/tipc/types"
)

func TestSubstituteVarMatch(t *testing.T) {
	v := types.NewVar(1)
	replacement := types.NewCons("int")
	assert.True(t, types.Equal(Substitute(v, v, replacement), replacement))
}

func TestSubstituteVarNoMatch(t *testing.T) {
	v1, v2 := types.NewVar(1), types.NewVar(2)
	replacement := types.NewCons("int")
	assert.True(t, types.Equal(Substitute(v1, v2, replacement), v1))
}

func TestSubstituteIdentity(t *testing.T) {
	// substitute(t, v, v) == t, for any t mentioning v.
	v := types.NewVar(1)
	term := types.NewCons("ptr", v)
	assert.True(t, types.Equal(Substitute(term, v, v), term))
}

func TestSubstituteConsRecurses(t *testing.T) {
	v := types.NewVar(1)
	term := types.NewCons("ptr", v, types.NewCons("int"))
	got := Substitute(term, v, types.NewCons("bool"))
	want := types.NewCons("ptr", types.NewCons("bool"), types.NewCons("int"))
	assert.True(t, types.Equal(got, want))
}

func TestSubstituteMuShadowed(t *testing.T) {
	bound := types.NewAlpha(1)
	mu := &types.Mu{Bound: bound, Body: types.NewCons("ptr", bound)}
	// Substituting for the bound variable itself is a no-op: it is shadowed.
	got := Substitute(mu, bound, types.NewCons("int"))
	assert.True(t, types.Equal(got, mu))
}

func TestSubstituteMuRecursesIntoBody(t *testing.T) {
	bound := types.NewAlpha(1)
	other := types.NewVar(2)
	mu := &types.Mu{Bound: bound, Body: types.NewCons("ptr", bound, other)}
	got := Substitute(mu, other, types.NewCons("int"))
	want := &types.Mu{Bound: bound, Body: types.NewCons("ptr", bound, types.NewCons("int"))}
	assert.True(t, types.Equal(got, want))
}

func TestSubstituteNoFreeOccurrenceIsNoOp(t *testing.T) {
	v := types.NewVar(1)
	unrelated := types.NewVar(2)
	term := types.NewCons("ptr", unrelated)
	assert.True(t, types.Equal(Substitute(term, v, types.NewCons("int")), term))
}
