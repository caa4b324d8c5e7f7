package chemgraph

import (
	"testing"

	chem "github.com/rmera/vsepr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// a propane chain C0-C1-C2 plus a lone O3 and an H4 bonded to C2.
func chain() (*chem.MolecularStructure, []*chem.Atom) {
	mol := chem.NewStructure(nil)
	c0 := mol.AddAtom("C", r3.Vec{})
	c1 := mol.AddAtom("C", r3.Vec{X: 0.15})
	c2 := mol.AddAtom("C", r3.Vec{X: 0.30})
	o3 := mol.AddAtom("O", r3.Vec{Y: 1})
	h4 := mol.AddAtom("H", r3.Vec{X: 0.41})
	mol.AddBond(c0, c1, 1)
	mol.AddBond(c1, c2, 2)
	mol.AddBond(c2, h4, 1)
	return mol, []*chem.Atom{c0, c1, c2, o3, h4}
}

func TestGraph(Te *testing.T) {
	mol, at := chain()
	g := FromStructure(mol)
	assert.Equal(Te, 5, g.Nodes().Len())
	assert.True(Te, g.HasEdgeBetween(0, 1))
	assert.True(Te, g.HasEdgeBetween(2, 1))
	assert.False(Te, g.HasEdgeBetween(0, 2))
	w, ok := g.Weight(1, 2)
	require.True(Te, ok)
	assert.Equal(Te, 2.0, w, "edge weights are bond orders")
	e := g.Edge(1, 2).(*Bond)
	assert.Same(Te, mol.BondBetween(at[1], at[2]), e.Bond)
	r := e.ReversedEdge()
	assert.Equal(Te, e.From().ID(), r.To().ID())
	assert.Equal(Te, e.To().ID(), r.From().ID())
}

func TestFragments(Te *testing.T) {
	mol, at := chain()
	f := FromStructure(mol).Fragments()
	require.Len(Te, f, 2)
	assert.Equal(Te, []*chem.Atom{at[0], at[1], at[2], at[4]}, f[0])
	assert.Equal(Te, []*chem.Atom{at[3]}, f[1])
	//breaking the chain in the middle.
	mol.RemoveAtom(at[1])
	f = FromStructure(mol).Fragments()
	require.Len(Te, f, 3)
	assert.Equal(Te, []*chem.Atom{at[0]}, f[0])
	assert.Equal(Te, []*chem.Atom{at[2], at[4]}, f[1])
	assert.Equal(Te, []*chem.Atom{at[3]}, f[2])
	assert.Empty(Te, FromStructure(chem.NewStructure(nil)).Fragments())
}

func TestPath(Te *testing.T) {
	mol, at := chain()
	g := FromStructure(mol)
	assert.Equal(Te, []*chem.Atom{at[0], at[1], at[2], at[4]}, g.Path(at[0], at[4]))
	assert.Equal(Te, []*chem.Atom{at[4], at[2]}, g.Path(at[4], at[2]))
	assert.Nil(Te, g.Path(at[0], at[3]))
	//a ring shortcut makes the path shorter, whatever the bond orders.
	mol.AddBond(at[0], at[4], 3)
	g = FromStructure(mol)
	assert.Equal(Te, []*chem.Atom{at[0], at[4]}, g.Path(at[0], at[4]))
	other := chem.NewStructure(nil).AddAtom("C", r3.Vec{})
	assert.Panics(Te, func() { g.Path(at[0], other) })
}
