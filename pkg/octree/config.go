package octree

import "github.com/fmstephe/octree-system/internal/nodepool"

// config holds the settings and node allocators shared, read-only, by
// every cell in a single Octree. Every Leaf and Branch carries a pointer
// to it instead of a back-reference to the tree itself, since a cell
// never needs anything from the tree beyond this immutable configuration.
type config[T, N any, S Scalar] struct {
	maxItemsPerCell int
	// maxLevelCount is the number of tree levels allowed, the root's
	// being the first: a Leaf at depth d may promote only while
	// d+1 < maxLevelCount. 0 means unbounded. Depth of the root is 0.
	maxLevelCount int
	// maxCellSize is, despite its name, a *minimum* permissible cell
	// radius: subdivision stops once a would-be child's radius would
	// fall below it. 0 disables this stop criterion.
	maxCellSize S

	leaves   *nodepool.Pool[Leaf[T, N, S]]
	branches *nodepool.Pool[Branch[T, N, S]]
}

func newConfig[T, N any, S Scalar](maxItemsPerCell, maxLevelCount int, maxCellSize S) *config[T, N, S] {
	return &config[T, N, S]{
		maxItemsPerCell: maxItemsPerCell,
		maxLevelCount:   maxLevelCount,
		maxCellSize:     maxCellSize,
		leaves:          nodepool.New[Leaf[T, N, S]](),
		branches:        nodepool.New[Branch[T, N, S]](),
	}
}

// stopsPromotion reports whether a Leaf at the given depth and radius must
// retain all arriving items rather than promote to a Branch.
func (c *config[T, N, S]) stopsPromotion(depth int, radius S) bool {
	if c.maxLevelCount > 0 && depth+1 >= c.maxLevelCount {
		return true
	}
	if c.maxCellSize > 0 && radius/2 < c.maxCellSize {
		return true
	}
	return false
}

func (c *config[T, N, S]) newLeaf(center Vec3[S], radius S) *Leaf[T, N, S] {
	l := c.leaves.Alloc()
	l.center = center
	l.radius = radius
	l.items = nil
	return l
}

func (c *config[T, N, S]) newBranch(center Vec3[S], radius S) *Branch[T, N, S] {
	b := c.branches.Alloc()
	b.center = center
	b.radius = radius
	return b
}
