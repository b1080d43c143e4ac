package borrow

import "unsafe"

// Ledger is the per-document registry of tracker cells, keyed by node
// address. All handles into one document tree must come from the same
// Ledger, otherwise aliasing between them goes unnoticed.
type Ledger struct {
	cells map[unsafe.Pointer]*Cell
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{cells: make(map[unsafe.Pointer]*Cell)}
}

// Wrap pairs a node with its tracker cell, creating the cell on first
// sight. The cell is keyed by address, so a node and its leading
// embedded base resolve to the same cell.
func Wrap[T any](l *Ledger, node *T) *Handle[T] {
	key := unsafe.Pointer(node)
	cell, ok := l.cells[key]
	if !ok {
		cell = &Cell{}
		l.cells[key] = cell
	}
	return &Handle[T]{node: node, cell: cell}
}

// Handle is a transient capability granting borrow-checked access to
// one node. It holds no state beyond the node address and the tracker
// cell; producing handles is cheap and they are meant to be dropped
// after use.
type Handle[T any] struct {
	node *T
	cell *Cell
}

// Read runs fn with shared access to the node. Any number of shared
// accesses may be active at once; Read fails with ErrBorrowConflict
// while an exclusive borrow is outstanding. fn must not retain the
// node pointer beyond its return.
func (h *Handle[T]) Read(fn func(*T) error) error {
	if err := h.cell.acquireShared(); err != nil {
		return err
	}
	defer h.cell.releaseShared()
	return fn(h.node)
}

// Write runs fn with exclusive access to the node. Write fails with
// ErrBorrowConflict while any other borrow, shared or exclusive, is
// outstanding. fn must not retain the node pointer beyond its return.
func (h *Handle[T]) Write(fn func(*T) error) error {
	if err := h.cell.acquireExclusive(); err != nil {
		return err
	}
	defer h.cell.releaseExclusive()
	return fn(h.node)
}

// Borrow acquires a shared guard that stays live until Release.
func (h *Handle[T]) Borrow() (*Ref[T], error) {
	if err := h.cell.acquireShared(); err != nil {
		return nil, err
	}
	return &Ref[T]{node: h.node, cell: h.cell}, nil
}

// BorrowMut acquires an exclusive guard that stays live until Release.
func (h *Handle[T]) BorrowMut() (*RefMut[T], error) {
	if err := h.cell.acquireExclusive(); err != nil {
		return nil, err
	}
	return &RefMut[T]{node: h.node, cell: h.cell}, nil
}

// Project reinterprets a handle along a declared base-pointer
// projection. The view function must return a pointer to a leading
// embedded base of the node, so the result addresses the identical
// memory. The projected handle shares the source cell: a borrow through
// either handle excludes conflicting borrows through the other.
func Project[D, A any](h *Handle[D], view func(*D) *A) *Handle[A] {
	return &Handle[A]{node: view(h.node), cell: h.cell}
}

// Ref is a live shared borrow. The node must be treated as read-only
// for the guard's lifetime.
type Ref[T any] struct {
	node     *T
	cell     *Cell
	released bool
}

// Node returns the borrowed node.
func (r *Ref[T]) Node() *T {
	return r.node
}

// Release ends the borrow. Safe to call more than once.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.releaseShared()
}

// RefMut is a live exclusive borrow.
type RefMut[T any] struct {
	node     *T
	cell     *Cell
	released bool
}

// Node returns the borrowed node.
func (r *RefMut[T]) Node() *T {
	return r.node
}

// Release ends the borrow. Safe to call more than once.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.releaseExclusive()
}
