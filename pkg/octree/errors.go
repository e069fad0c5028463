package octree

import "errors"

// ErrNotEmpty is returned by InsertBatch when autoAdjust is requested on a
// tree that already holds items: auto-adjust recenters and resizes the
// root, which would silently orphan anything already inserted.
var ErrNotEmpty = errors.New("octree: auto-adjust requires an empty tree")
