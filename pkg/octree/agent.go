package octree

import "log"

// Agent is the membership predicate a caller supplies to an Octree. It
// decides whether an item should be considered present in a given cube,
// and is consulted at every level of descent during insertion.
type Agent[T, N any, S Scalar] interface {
	// Overlaps reports whether item should be considered present in the
	// cube of half-extent cellRadius centered at cellCenter.
	Overlaps(item *T, cellCenter Vec3[S], cellRadius S) bool
}

// AdjustAgent is the optional capability extension an Agent may also
// implement to support Octree.InsertBatch's auto-adjust mode. Most
// Agents never need auto-adjust, so it is kept separate from the
// required Agent interface rather than folded into it.
type AdjustAgent[T, N any, S Scalar] interface {
	Agent[T, N, S]

	// MaxForAdjust folds item into a running maximum corner.
	MaxForAdjust(item *T, currentMax Vec3[S]) Vec3[S]

	// MinForAdjust folds item into a running minimum corner.
	MinForAdjust(item *T, currentMin Vec3[S]) Vec3[S]
}

// BaseAgent provides default, diagnostic-only adjust reducers. Embed it
// in an Agent implementation that does not support auto-adjust;
// embed it alongside custom MaxForAdjust/MinForAdjust overrides to obtain
// an AdjustAgent. On its own BaseAgent does not implement AdjustAgent
// (Overlaps is still required from the embedding type), it only supplies
// the fallback reducer bodies.
type BaseAgent[T, N any, S Scalar] struct{}

// MaxForAdjust is the default reducer: it leaves currentMax untouched and
// logs that auto-adjust will not shrink-wrap the tree unless overridden.
func (BaseAgent[T, N, S]) MaxForAdjust(item *T, currentMax Vec3[S]) Vec3[S] {
	log.Printf("octree: Agent does not override MaxForAdjust; auto-adjust will use the tree's initial bounds")
	return currentMax
}

// MinForAdjust is the default reducer: it leaves currentMin untouched and
// logs that auto-adjust will not shrink-wrap the tree unless overridden.
func (BaseAgent[T, N, S]) MinForAdjust(item *T, currentMin Vec3[S]) Vec3[S] {
	log.Printf("octree: Agent does not override MinForAdjust; auto-adjust will use the tree's initial bounds")
	return currentMin
}
