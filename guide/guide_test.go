package guide

import (
	"math"
	"testing"

	chem "github.com/rmera/vsepr"
	v3 "github.com/rmera/vsepr/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

//angle between a and b, in degrees.
func deg(a, b r3.Vec) float64 {
	return v3.Rad2Deg(v3.Angle(a, b))
}

func checkUnit(Te *testing.T, dirs []r3.Vec) {
	Te.Helper()
	for i, d := range dirs {
		require.False(Te, math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsNaN(d.Z), "direction %d is NaN", i)
		assert.InDelta(Te, 1, r3.Norm(d), 1e-9, "direction %d is not unitary", i)
	}
}

func TestTetrahedralNoHardPoints(Te *testing.T) {
	core := r3.Vec{X: 1, Y: 2, Z: 3}
	pose := r3.Add(core, r3.Vec{Y: 0.5})
	dirs := Directions(core, nil, &pose, 4)
	require.Len(Te, dirs, 4)
	checkUnit(Te, dirs)
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(dirs[0], v3.Up)), 1e-9, "the first direction points to the pose")
	for i := range dirs {
		for j := i + 1; j < len(dirs); j++ {
			assert.InDelta(Te, 109.5, deg(dirs[i], dirs[j]), 0.5, "directions %d and %d", i, j)
		}
	}
	//no pose means up.
	assert.Equal(Te, dirs, Directions(core, nil, nil, 4))
}

func TestNoHardPointsCount(Te *testing.T) {
	pose := r3.Vec{X: 1, Y: 1, Z: 1}
	for steric := 1; steric <= 4; steric++ {
		dirs := Directions(r3.Vec{}, nil, &pose, steric)
		assert.Len(Te, dirs, steric, "steric %d", steric)
		checkUnit(Te, dirs)
	}
	lin := Directions(r3.Vec{}, nil, &pose, 2)
	assert.InDelta(Te, 180, deg(lin[0], lin[1]), 1e-6)
	tri := Directions(r3.Vec{}, nil, &pose, 3)
	assert.InDelta(Te, 120, deg(tri[0], tri[1]), 1e-6)
	assert.InDelta(Te, 120, deg(tri[0], tri[2]), 1e-6)
	assert.InDelta(Te, 120, deg(tri[1], tri[2]), 1e-6)
}

func TestOneHardPoint(Te *testing.T) {
	hp := r3.Vec{X: 1}
	pose := r3.Vec{Y: 1}
	dirs := Directions(r3.Vec{}, []r3.Vec{hp}, &pose, 4)
	require.Len(Te, dirs, 3)
	checkUnit(Te, dirs)
	for i, d := range dirs {
		assert.InDelta(Te, 109.5, deg(hp, d), 1e-6, "direction %d", i)
	}
	assert.Greater(Te, dirs[0].Y, 0.0, "the first direction is on the side of the pose")
	assert.InDelta(Te, 0, dirs[0].Z, 1e-9)

	tri := Directions(r3.Vec{}, []r3.Vec{hp}, &pose, 3)
	require.Len(Te, tri, 2)
	assert.InDelta(Te, 120, deg(hp, tri[0]), 1e-6)
	assert.InDelta(Te, 120, deg(hp, tri[1]), 1e-6)
	assert.InDelta(Te, 120, deg(tri[0], tri[1]), 1e-6)

	lin := Directions(r3.Vec{}, []r3.Vec{hp}, &pose, 2)
	require.Len(Te, lin, 1)
	assert.InDelta(Te, 180, deg(hp, lin[0]), 1e-6)
	assert.Empty(Te, Directions(r3.Vec{}, []r3.Vec{hp}, &pose, 1))
}

func TestTwoHardPoints(Te *testing.T) {
	h1 := r3.Vec{X: 1}
	h2 := v3.AxisAngle(r3.Vec{Z: 1}, 109.5, h1)
	opp := v3.Unit(r3.Scale(-1, r3.Add(h1, h2)))
	dirs := Directions(r3.Vec{}, []r3.Vec{h1, h2}, nil, 4)
	require.Len(Te, dirs, 2)
	checkUnit(Te, dirs)
	for i, d := range dirs {
		assert.InDelta(Te, 54.75, deg(opp, d), 1e-6, "direction %d", i)
		assert.InDelta(Te, 109.5, deg(h1, d), 0.5, "direction %d", i)
		assert.InDelta(Te, 109.5, deg(h2, d), 0.5, "direction %d", i)
	}
	assert.InDelta(Te, 109.5, deg(dirs[0], dirs[1]), 1e-6)

	tri := Directions(r3.Vec{}, []r3.Vec{h1, h2}, nil, 3)
	require.Len(Te, tri, 1)
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(opp, tri[0])), 1e-9)
	assert.Empty(Te, Directions(r3.Vec{}, []r3.Vec{h1, h2}, nil, 2))
}

func TestThreeHardPoints(Te *testing.T) {
	pose := r3.Vec{Y: 1}
	tet := Directions(r3.Vec{}, nil, &pose, 4)
	dirs := Directions(r3.Vec{}, tet[:3], nil, 4)
	require.Len(Te, dirs, 1)
	checkUnit(Te, dirs)
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(dirs[0], tet[3])), 1e-2, "the missing leg of the tetrahedron")
	assert.Empty(Te, Directions(r3.Vec{}, tet[:3], nil, 3))
	assert.Empty(Te, Directions(r3.Vec{}, tet, nil, 4))
}

func TestDegenerate(Te *testing.T) {
	core := r3.Vec{X: 1}
	//pose on the core.
	dirs := Directions(core, nil, &core, 4)
	require.Len(Te, dirs, 4)
	checkUnit(Te, dirs)
	//pose along the hard point.
	up := r3.Add(core, v3.Up)
	checkUnit(Te, Directions(core, []r3.Vec{v3.Up}, &up, 4))
	checkUnit(Te, Directions(core, []r3.Vec{v3.Up}, &up, 3))
	//pose parallel to the forward reference.
	fwd := r3.Add(core, v3.Forward)
	dirs = Directions(core, nil, &fwd, 3)
	require.Len(Te, dirs, 3)
	checkUnit(Te, dirs)
	assert.InDelta(Te, 120, deg(dirs[0], dirs[1]), 1e-6)
	//opposite hard points.
	opp := []r3.Vec{{X: 1}, {X: -1}}
	dirs = Directions(core, opp, nil, 4)
	require.Len(Te, dirs, 2)
	checkUnit(Te, dirs)
	checkUnit(Te, Directions(core, opp, nil, 3))
	//three hard points on a plane.
	h1 := r3.Vec{X: 1}
	planar := []r3.Vec{h1, v3.AxisAngle(v3.Forward, 120, h1), v3.AxisAngle(v3.Forward, -120, h1)}
	dirs = Directions(core, planar, nil, 4)
	require.Len(Te, dirs, 1)
	checkUnit(Te, dirs)
	assert.InDelta(Te, 90, deg(h1, dirs[0]), 1e-6)
	//a zero hard point is no hard point.
	dirs = Directions(core, []r3.Vec{{}}, nil, 4)
	require.Len(Te, dirs, 4)
	checkUnit(Te, dirs)
}

func TestCoincidentBonded(Te *testing.T) {
	mol := chem.NewStructure(nil)
	a := mol.AddAtom("C", r3.Vec{})
	b := mol.AddAtom("C", r3.Vec{})
	mol.AddBond(a, b, 1)
	assert.Empty(Te, HardPoints(a))
	pose := r3.Vec{X: 0.1, Y: 0.1}
	for _, g := range Calculate(mol, []*chem.Atom{a, b}, "H", &pose) {
		require.Len(Te, g.Directions, 4)
		checkUnit(Te, g.Directions)
		for i, p := range g.Positions {
			assert.Greater(Te, r3.Norm(r3.Sub(p, g.Core.Pos)), 0.05, "position %d sits on the core", i)
		}
	}
}

func TestHardPointsAndSteric(Te *testing.T) {
	mol := chem.NewStructure(nil)
	c := mol.AddAtom("C", r3.Vec{})
	o := mol.AddAtom("O", r3.Vec{Y: 0.12})
	h := mol.AddAtom("H", r3.Vec{X: 0.22})
	assert.Empty(Te, HardPoints(c))
	assert.Equal(Te, 4, EffectiveSteric(c))
	mol.AddBond(c, o, 2)
	mol.AddBond(c, h, 1)
	hp := HardPoints(c)
	require.Len(Te, hp, 2)
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(hp[0], v3.Up)), 1e-12)
	assert.InDelta(Te, 0, r3.Norm(r3.Sub(hp[1], r3.Vec{X: 1})), 1e-12)
	assert.Equal(Te, 3, EffectiveSteric(c), "the double bond takes an extra domain")
	assert.Equal(Te, 1, EmptyBonds(c))
	assert.Equal(Te, 0, EmptyBonds(o))
}

func TestCalculate(Te *testing.T) {
	//a carbon singly bonded to two other carbons.
	mol := chem.NewStructure(nil)
	c0 := mol.AddAtom("C", r3.Vec{})
	c1 := mol.AddAtom("C", r3.Vec{X: 0.15})
	c2 := mol.AddAtom("C", r3.Scale(0.15, v3.AxisAngle(v3.Forward, 109.5, r3.Vec{X: 1})))
	mol.AddBond(c0, c1, 1)
	mol.AddBond(c0, c2, 1)
	g := Calculate(mol, []*chem.Atom{c0, c1}, "C", nil)
	require.Len(Te, g, 2)
	assert.Same(Te, c0, g[0].Core)
	require.Len(Te, g[0].Directions, 2)
	require.Len(Te, g[0].Positions, 2)
	opp := v3.Unit(r3.Scale(-1, r3.Add(HardPoints(c0)[0], HardPoints(c0)[1])))
	for i, d := range g[0].Directions {
		assert.InDelta(Te, 54.75, deg(opp, d), 1e-6)
		assert.InDelta(Te, 0.15, v3.Distance(c0.Pos, g[0].Positions[i]), 1e-9)
	}
	assert.True(Te, g[0].Valid())
	//c1 has one hard point.
	assert.Len(Te, g[1].Directions, 3)
	//an H core is placed at the C-H distance, and being full, its guideline is not valid.
	h := mol.AddAtom("H", r3.Vec{X: -0.11})
	mol.AddBond(h, c0, 1)
	g = Calculate(mol, []*chem.Atom{h}, "H", nil)
	assert.False(Te, g[0].Valid())
	assert.Empty(Te, g[0].Directions, "steric 1 with a hard point leaves no room")
	assert.Empty(Te, Calculate(mol, nil, "C", nil))
}

func TestCalculateNotInStructure(Te *testing.T) {
	mol := chem.NewStructure(nil)
	mol.AddAtom("C", r3.Vec{})
	stray := chem.NewStructure(nil).AddAtom("C", r3.Vec{})
	assert.PanicsWithValue(Te, chem.ErrNotInStructure, func() {
		Calculate(mol, []*chem.Atom{stray}, "C", nil)
	})
	removed := mol.Atom(0)
	mol.RemoveAtom(removed)
	assert.Panics(Te, func() { Calculate(mol, []*chem.Atom{removed}, "H", nil) })
}
