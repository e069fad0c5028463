package octree

// Visitor is the traversal protocol for Octree.Visit. It has a
// sequential half and a threaded half:
//
//   - VisitRoot is the single-threaded entry point; its default body
//     calls ContinueVisit(cell), which dispatches to VisitLeaf or
//     VisitBranch depending on the cell's kind. VisitBranch's default
//     body in turn calls ContinueVisit on each of its eight children.
//     A Visitor that overrides VisitBranch is entirely responsible for
//     deciding which children to recurse into by calling ContinueVisit
//     itself; the core never recurses on its own below VisitRoot.
//   - VisitPreRoot/VisitPreBranch(skip)/VisitPostBranch/VisitPostRoot
//     are the threaded-mode bookends used only at the root: the core
//     gathers the root's eight children, calls VisitPreBranch once with
//     skip initialized to all-true, then fans a worker out per
//     configured thread across a disjoint slice of child indices.
//     Setting skip[i] = false prevents any worker from visiting child
//     i's subtree at all. Below the root, each worker's descent is
//     ordinary visitor-driven recursion (ContinueVisit), exactly as in
//     sequential mode.
type Visitor[T, N any, S Scalar] interface {
	// VisitRoot is the single-threaded traversal entry point.
	VisitRoot(cell Cell[T, N, S])
	// VisitPreRoot runs once before a threaded traversal's fan-out.
	VisitPreRoot(cell Cell[T, N, S])
	// VisitPostRoot runs once after a threaded traversal's fan-out has
	// fully joined.
	VisitPostRoot(cell Cell[T, N, S])
	// VisitBranch is the single-threaded per-Branch callback.
	VisitBranch(cell Cell[T, N, S], children [8]Cell[T, N, S])
	// VisitPreBranch is the threaded-mode root bookend. skip starts
	// all-true (every child will be visited); setting skip[i] = false
	// prunes that child's whole subtree from the parallel traversal.
	VisitPreBranch(cell Cell[T, N, S], children [8]Cell[T, N, S], skip *[8]bool)
	// VisitPostBranch is the threaded-mode root bookend run after every
	// non-skipped child has been joined.
	VisitPostBranch(cell Cell[T, N, S], children [8]Cell[T, N, S])
	// VisitLeaf is called once per Leaf, with its current item handles.
	VisitLeaf(cell Cell[T, N, S], items []*T)
	// ContinueVisit dispatches cell to VisitLeaf or VisitBranch. Callers
	// overriding VisitRoot or VisitBranch use it to continue descent.
	ContinueVisit(cell Cell[T, N, S])
}

// selfSetter is implemented by BaseVisitor so Octree.Visit can wire a
// concrete Visitor's full method set back into it. Go has no virtual
// dispatch: without this, BaseVisitor's default VisitRoot/VisitBranch
// bodies could only ever recurse back into BaseVisitor's own no-op
// methods, never into an embedding type's overrides.
type selfSetter[T, N any, S Scalar] interface {
	setSelf(v Visitor[T, N, S])
}

// BaseVisitor supplies default bodies for every Visitor callback: embed
// it and override only the callbacks a concrete Visitor cares about.
// Its methods take a pointer receiver, so the embedding type must be
// used through a pointer (embed BaseVisitor by value, take the outer
// type's address when passing it as a Visitor).
type BaseVisitor[T, N any, S Scalar] struct {
	self Visitor[T, N, S]
}

func (b *BaseVisitor[T, N, S]) setSelf(v Visitor[T, N, S]) { b.self = v }

func (b *BaseVisitor[T, N, S]) dispatchSelf() Visitor[T, N, S] {
	if b.self != nil {
		return b.self
	}
	return b
}

// VisitRoot's default body simply continues the traversal.
func (b *BaseVisitor[T, N, S]) VisitRoot(cell Cell[T, N, S]) {
	b.ContinueVisit(cell)
}

func (b *BaseVisitor[T, N, S]) VisitPreRoot(cell Cell[T, N, S]) {}

func (b *BaseVisitor[T, N, S]) VisitPostRoot(cell Cell[T, N, S]) {}

// VisitBranch's default body continues into every child.
func (b *BaseVisitor[T, N, S]) VisitBranch(cell Cell[T, N, S], children [8]Cell[T, N, S]) {
	self := b.dispatchSelf()
	for _, c := range children {
		self.ContinueVisit(c)
	}
}

func (b *BaseVisitor[T, N, S]) VisitPreBranch(cell Cell[T, N, S], children [8]Cell[T, N, S], skip *[8]bool) {
}

func (b *BaseVisitor[T, N, S]) VisitPostBranch(cell Cell[T, N, S], children [8]Cell[T, N, S]) {}

func (b *BaseVisitor[T, N, S]) VisitLeaf(cell Cell[T, N, S], items []*T) {}

// ContinueVisit dispatches cell to the full Visitor's VisitLeaf or
// VisitBranch, per cell's own visit method.
func (b *BaseVisitor[T, N, S]) ContinueVisit(cell Cell[T, N, S]) {
	cell.visit(b.dispatchSelf())
}
