package octree

// point is the item type used throughout the package's tests: a bare 3D
// position, inserted by pointer identity the way a real consumer would
// insert handles to their own entities.
type point struct {
	x, y, z float64
}

// pointAgent is a simple "point lies within half-extent of cell" Agent:
// axis-aligned containment, no auto-adjust support of its own beyond
// BaseAgent's identity reducers.
type pointAgent struct {
	BaseAgent[point, int, float64]
}

func (pointAgent) Overlaps(item *point, cellCenter Vec3[float64], cellRadius float64) bool {
	return absF(item.x-cellCenter.X) <= cellRadius &&
		absF(item.y-cellCenter.Y) <= cellRadius &&
		absF(item.z-cellCenter.Z) <= cellRadius
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// adjustPointAgent additionally folds item bounds for InsertBatch's
// auto-adjust mode.
type adjustPointAgent struct {
	pointAgent
}

func (adjustPointAgent) MaxForAdjust(item *point, currentMax Vec3[float64]) Vec3[float64] {
	return currentMax.Max(Vec3[float64]{item.x, item.y, item.z})
}

func (adjustPointAgent) MinForAdjust(item *point, currentMin Vec3[float64]) Vec3[float64] {
	return currentMin.Min(Vec3[float64]{item.x, item.y, item.z})
}

// plainPointAgent implements Agent but not AdjustAgent: no embedded
// BaseAgent, no MaxForAdjust/MinForAdjust methods at all. Used to
// exercise InsertBatch's auto-adjust fallback for an Agent that
// genuinely cannot be type-asserted to AdjustAgent, as opposed to
// pointAgent, which always satisfies AdjustAgent via BaseAgent's
// promoted identity reducers.
type plainPointAgent struct{}

func (plainPointAgent) Overlaps(item *point, cellCenter Vec3[float64], cellRadius float64) bool {
	return absF(item.x-cellCenter.X) <= cellRadius &&
		absF(item.y-cellCenter.Y) <= cellRadius &&
		absF(item.z-cellCenter.Z) <= cellRadius
}
