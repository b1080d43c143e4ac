// Package borrow implements the ownership/borrow bridge: dynamic
// single-writer/many-reader access tracking for nodes that are owned
// and laid out elsewhere.
//
// # Why Dynamic
//
// The document tree is owned by the core layer, and nodes are reachable
// through more than one path (a creation handle and a later list fetch
// address the same node). The compiler cannot prove exclusivity across
// those paths, so the bridge enforces it at run time: every access
// acquires a borrow from the node's tracker cell and releases it when
// the access ends.
//
// # Ledger and Handles
//
// A Ledger holds one tracker cell per node, keyed by the node's
// address. Wrap pairs a node pointer with its cell and returns a
// Handle. Wrapping the same node twice yields handles that share one
// cell, so conflicting access through separate handles is still caught.
//
// Handles grant access two ways:
//
//	h.Read(func(n *T) error { ... })   // shared, scoped to the closure
//	h.Write(func(n *T) error { ... })  // exclusive, scoped to the closure
//
// or through explicit guards for accesses that span statements:
//
//	ref, err := h.Borrow()      // shared
//	defer ref.Release()
//	mut, err := h.BorrowMut()   // exclusive
//	defer mut.Release()
//
// The closure forms are preferred: they keep the aliasing window to a
// single enclosing operation. Conflicting acquisitions return
// ErrBorrowConflict; the bridge never panics and never retries.
//
// # Upcasts
//
// Project reinterprets a Handle[Derived] as a Handle[Ancestor] through
// a caller-declared base-pointer projection. The projected handle
// addresses the identical node and shares the source handle's tracker
// cell, so exclusivity spans the upcast boundary. Projections are only
// valid for leading embedded bases (the base sub-object starts at the
// node's own address); declaring one for any other layout is a bug in
// the declaring package, not something this package detects.
//
// The package is single-threaded by contract, matching the document
// model it guards. Cells are plain counters, not mutexes; sharing a
// Ledger across goroutines is not supported.
package borrow
