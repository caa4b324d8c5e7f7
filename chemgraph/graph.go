package chemgraph

import (
	"math"
	"sort"

	chem "github.com/rmera/vsepr"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom wraps a chem.Atom so it can be a gonum graph node. The ID is the atom's index.
type Atom struct {
	*chem.Atom
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

// Bond wraps a chem.Bond so it can be a gonum weighted edge. The weight is the bond order.
type Bond struct {
	*chem.Bond
	At1, At2 *Atom
}

func (B *Bond) Weight() float64 {
	return float64(B.Order)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// Bonds are not directional, so the reversed edge is the same bond with the ends switched.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

// Graph is an undirected, weighted gonum graph with the atoms and bonds of a structure.
// It is a snapshot: changes to the structure after FromStructure are not seen.
type Graph struct {
	*simple.WeightedUndirectedGraph
}

// FromStructure builds the graph for the current atoms and bonds of mol.
func FromStructure(mol *chem.MolecularStructure) *Graph {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	nodes := make([]*Atom, mol.Len())
	for i, a := range mol.Atoms() {
		nodes[i] = &Atom{Atom: a}
		g.AddNode(nodes[i])
	}
	for _, b := range mol.Bonds() {
		g.SetWeightedEdge(&Bond{Bond: b, At1: nodes[b.At1.Index], At2: nodes[b.At2.Index]})
	}
	return &Graph{WeightedUndirectedGraph: g}
}

func (G *Graph) atom(n graph.Node) *chem.Atom {
	return n.(*Atom).Atom
}

func (G *Graph) node(a *chem.Atom) graph.Node {
	n := G.Node(int64(a.Index))
	if n == nil || G.atom(n) != a {
		panic(chem.ErrNotInStructure)
	}
	return n
}

// Fragments returns the connected fragments of the structure. Each fragment
// is sorted by atom index, and fragments are sorted by their first atom.
func (G *Graph) Fragments() [][]*chem.Atom {
	cc := topo.ConnectedComponents(G)
	ret := make([][]*chem.Atom, 0, len(cc))
	for _, c := range cc {
		frag := make([]*chem.Atom, 0, len(c))
		for _, n := range c {
			frag = append(frag, G.atom(n))
		}
		sort.Slice(frag, func(i, j int) bool { return frag[i].Index < frag[j].Index })
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0].Index < ret[j][0].Index })
	return ret
}

// unweighted hides the bond orders, so paths are counted in bonds.
type unweighted struct {
	graph.Undirected
}

// Path returns the atoms in a path from a to b with the fewest bonds,
// both ends included, or nil if a and b are not connected.
// Both atoms must have been in the structure when the graph was built.
func (G *Graph) Path(a, b *chem.Atom) []*chem.Atom {
	from := G.node(a)
	to := G.node(b)
	shortest := path.DijkstraFrom(from, unweighted{G.WeightedUndirectedGraph})
	nodes, _ := shortest.To(to.ID())
	if len(nodes) == 0 {
		return nil
	}
	ret := make([]*chem.Atom, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, G.atom(n))
	}
	return ret
}
