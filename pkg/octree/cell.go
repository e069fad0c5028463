package octree

import (
	"io"
	"sync/atomic"
)

// Cell is the common contract shared by Leaf and Branch: a cell is
// either terminal or interior, rendered as a Go interface instead of a
// hand-rolled tag+union, with *Leaf[T, N, S] and *Branch[T, N, S] as its
// two implementations.
type Cell[T, N any, S Scalar] interface {
	// Center returns this cell's center point.
	Center() Vec3[S]
	// Radius returns this cell's half-side length.
	Radius() S
	// NodeData returns a pointer to this cell's per-node aggregate. It is
	// interior-mutable only during a Visitor callback.
	NodeData() *N
	// IsLeaf reports whether this cell is a Leaf.
	IsLeaf() bool

	insert(self *slot[T, N, S], item *T, agent Agent[T, N, S], depth int, cfg *config[T, N, S])
	tryInsert(self *slot[T, N, S], item *T, agent Agent[T, N, S], depth int, cfg *config[T, N, S]) bool
	visit(v Visitor[T, N, S])
	forceCountItems() int
	itemPath(item *T, path []byte) ([]byte, bool)
	dump(w io.Writer, level int)
	equalTo(other Cell[T, N, S]) bool
}

// slot holds a reference to a Cell that may be atomically replaced: a
// Leaf promoting itself to a Branch swaps its own slot's contents with a
// single atomic publish that concurrent readers observe via load(). Both
// Octree.root and every Branch child occupy a slot, so promotion is
// implemented once regardless of whether the cell being promoted is the
// root or a deeply nested leaf.
type slot[T, N any, S Scalar] struct {
	p atomic.Pointer[Cell[T, N, S]]
}

func newSlot[T, N any, S Scalar](c Cell[T, N, S]) *slot[T, N, S] {
	s := &slot[T, N, S]{}
	s.store(c)
	return s
}

func (s *slot[T, N, S]) load() Cell[T, N, S] {
	return *s.p.Load()
}

func (s *slot[T, N, S]) store(c Cell[T, N, S]) {
	s.p.Store(&c)
}

// childGeometry computes the center and half-radius of child index i (0..7)
// of a cube with the given center and radius: bit 0 selects +x, bit 1
// selects +z, and i<4 selects +y.
func childGeometry[S Scalar](center Vec3[S], radius S, i int) (Vec3[S], S) {
	half := radius / 2
	up := i < 4      // +y
	right := i&1 != 0 // +x
	front := i&2 != 0 // +z
	offset := Vec3[S]{
		X: signed(right, half),
		Y: signed(up, half),
		Z: signed(front, half),
	}
	return center.Add(offset), half
}

func signed[S Scalar](positive bool, half S) S {
	if positive {
		return half
	}
	return -half
}
