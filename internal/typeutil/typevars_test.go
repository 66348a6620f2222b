package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnushkaIdamekorala/tipc/types"
)

func TestCollectVar(t *testing.T) {
	v := types.NewVar(1)
	set := Collect(v)
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(v))
}

func TestCollectConsGathersChildren(t *testing.T) {
	v1, v2 := types.NewVar(1), types.NewVar(2)
	term := types.NewCons("fun", v1, v2, types.NewCons("int"))
	set := Collect(term)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(v1))
	assert.True(t, set.Contains(v2))
}

func TestCollectDeduplicates(t *testing.T) {
	v := types.NewVar(1)
	term := types.NewCons("fun", v, v)
	assert.Equal(t, 1, Collect(term).Len())
}

func TestCollectInsertionOrder(t *testing.T) {
	v1, v2, v3 := types.NewVar(1), types.NewVar(2), types.NewVar(3)
	term := types.NewCons("fun", v3, v1, v2)
	got := Collect(term).Slice()
	assert.Len(t, got, 3)
	assert.True(t, types.Equal(got[0], v3))
	assert.True(t, types.Equal(got[1], v1))
	assert.True(t, types.Equal(got[2], v2))
}

func TestCollectMuRemovesBound(t *testing.T) {
	bound := types.NewAlpha(1)
	free := types.NewVar(2)
	mu := &types.Mu{Bound: bound, Body: types.NewCons("ptr", bound, free)}
	set := Collect(mu)
	assert.Equal(t, 1, set.Len())
	assert.False(t, set.Contains(bound))
	assert.True(t, set.Contains(free))
}

func TestVarSetWithAddedDoesNotMutateReceiver(t *testing.T) {
	v1, v2 := types.NewVar(1), types.NewVar(2)
	base := NewVarSet()
	base.Add(v1)

	extended := base.WithAdded(v2)

	assert.False(t, base.Contains(v2), "WithAdded must not mutate the receiver")
	assert.True(t, extended.Contains(v1))
	assert.True(t, extended.Contains(v2))
}

func TestVarSetWithAddedExistingIsNoOp(t *testing.T) {
	v := types.NewVar(1)
	base := NewVarSet()
	base.Add(v)
	assert.Same(t, base, base.WithAdded(v))
}
