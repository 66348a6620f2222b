package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnushkaIdamekorala/tipc/types"
)

func TestUnionFindInsertIdempotent(t *testing.T) {
	uf := NewUnionFind()
	v := types.NewVar(1)
	uf.Insert(v)
	uf.Insert(v)
	assert.True(t, types.Equal(uf.Find(v), v))
}

func TestUnionFindLazyInsertion(t *testing.T) {
	uf := NewUnionFind()
	v := types.NewVar("unseen")
	assert.True(t, types.Equal(uf.Find(v), v), "first Find on an unseen term inserts it as its own root")
}

func TestUnionFindVarsShareEntryByHandle(t *testing.T) {
	uf := NewUnionFind()
	a := types.NewVar("x")
	b := types.NewVar("x")
	c := types.NewCons("int")
	uf.QuickUnion(a, c)
	assert.True(t, types.Equal(uf.Find(b), c), "b shares a's entry via the handle, even though it's a distinct *Var")
}

func TestQuickUnionRepresentativeChoice(t *testing.T) {
	uf := NewUnionFind()
	v := types.NewVar(1)
	c := types.NewCons("int")
	uf.QuickUnion(v, c)
	assert.True(t, types.Equal(uf.Find(v), c))
	assert.True(t, types.Equal(uf.Find(c), c))
}

func TestConsTermsKeyedByIdentity(t *testing.T) {
	uf := NewUnionFind()
	a := types.NewCons("ptr", types.NewVar(1))
	b := types.NewCons("ptr", types.NewVar(1))
	assert.True(t, types.Equal(uf.Find(a), a))
	assert.Same(t, b, uf.Find(b), "structurally-equal but distinct Cons instances are distinct entries")
}

func TestQuickUnionTransitive(t *testing.T) {
	uf := NewUnionFind()
	v1, v2, v3 := types.NewVar(1), types.NewVar(2), types.NewVar(3)
	uf.QuickUnion(v1, v2)
	uf.QuickUnion(v2, v3)
	assert.True(t, types.Equal(uf.Find(v1), v3))
	assert.True(t, types.Equal(uf.Find(v2), v3))
}
