package borrow

import (
	"errors"
	"testing"
)

type testNode struct {
	base  testBase
	value int
}

type testBase struct {
	id string
}

// leadingNode embeds its base as the first field, the layout Project
// is declared for.
type leadingNode struct {
	testBase
	value int
}

func TestSharedBorrows(t *testing.T) {
	l := NewLedger()
	n := &testNode{value: 1}
	h := Wrap(l, n)

	t.Run("ManyReaders", func(t *testing.T) {
		a, err := h.Borrow()
		if err != nil {
			t.Fatalf("first shared borrow failed: %v", err)
		}
		b, err := h.Borrow()
		if err != nil {
			t.Fatalf("second shared borrow failed: %v", err)
		}
		if a.Node() != n || b.Node() != n {
			t.Error("guards must address the wrapped node")
		}
		a.Release()
		b.Release()
	})

	t.Run("WriteBlockedByReader", func(t *testing.T) {
		ref, err := h.Borrow()
		if err != nil {
			t.Fatalf("shared borrow failed: %v", err)
		}

		if _, err := h.BorrowMut(); !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("expected ErrBorrowConflict, got %v", err)
		}

		ref.Release()
		mut, err := h.BorrowMut()
		if err != nil {
			t.Fatalf("exclusive borrow after release failed: %v", err)
		}
		mut.Release()
	})

	t.Run("ReadBlockedByWriter", func(t *testing.T) {
		mut, err := h.BorrowMut()
		if err != nil {
			t.Fatalf("exclusive borrow failed: %v", err)
		}
		if _, err := h.Borrow(); !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("expected ErrBorrowConflict, got %v", err)
		}
		if _, err := h.BorrowMut(); !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("expected ErrBorrowConflict for second writer, got %v", err)
		}
		mut.Release()
	})

	t.Run("ReleaseIdempotent", func(t *testing.T) {
		ref, _ := h.Borrow()
		ref.Release()
		ref.Release()
		mut, err := h.BorrowMut()
		if err != nil {
			t.Fatalf("double release must not leave a phantom borrow: %v", err)
		}
		mut.Release()
	})
}

func TestScopedAccess(t *testing.T) {
	l := NewLedger()
	h := Wrap(l, &testNode{value: 7})

	t.Run("ReadScope", func(t *testing.T) {
		var got int
		err := h.Read(func(n *testNode) error {
			got = n.value
			return nil
		})
		if err != nil || got != 7 {
			t.Errorf("expected value 7, got %d (err=%v)", got, err)
		}
	})

	t.Run("WriteScope", func(t *testing.T) {
		err := h.Write(func(n *testNode) error {
			n.value = 8
			return nil
		})
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		_ = h.Read(func(n *testNode) error {
			if n.value != 8 {
				t.Errorf("expected value 8, got %d", n.value)
			}
			return nil
		})
	})

	t.Run("BorrowReleasedAfterScope", func(t *testing.T) {
		_ = h.Read(func(*testNode) error { return nil })
		mut, err := h.BorrowMut()
		if err != nil {
			t.Fatalf("borrow must be released when the closure returns: %v", err)
		}
		mut.Release()
	})

	t.Run("NestedReadInsideRead", func(t *testing.T) {
		err := h.Read(func(*testNode) error {
			return h.Read(func(*testNode) error { return nil })
		})
		if err != nil {
			t.Errorf("shared borrows must nest: %v", err)
		}
	})

	t.Run("WriteInsideReadConflicts", func(t *testing.T) {
		err := h.Read(func(*testNode) error {
			return h.Write(func(*testNode) error { return nil })
		})
		if !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("expected ErrBorrowConflict, got %v", err)
		}
	})
}

func TestLedgerSharesCells(t *testing.T) {
	l := NewLedger()
	n := &testNode{}

	h1 := Wrap(l, n)
	h2 := Wrap(l, n)

	mut, err := h1.BorrowMut()
	if err != nil {
		t.Fatalf("exclusive borrow failed: %v", err)
	}
	if _, err := h2.Borrow(); !errors.Is(err, ErrBorrowConflict) {
		t.Errorf("second handle to the same node must share the tracker, got %v", err)
	}
	mut.Release()

	other := Wrap(l, &testNode{})
	if err := other.Write(func(*testNode) error { return nil }); err != nil {
		t.Errorf("distinct nodes must not share trackers: %v", err)
	}
}

func TestProject(t *testing.T) {
	l := NewLedger()
	n := &leadingNode{value: 3}
	n.id = "node-1"
	h := Wrap(l, n)

	base := Project(h, func(d *leadingNode) *testBase { return &d.testBase })

	t.Run("SameAddress", func(t *testing.T) {
		_ = base.Read(func(b *testBase) error {
			if b != &n.testBase {
				t.Error("projection must address the embedded base in place")
			}
			if b.id != "node-1" {
				t.Errorf("expected id node-1, got %q", b.id)
			}
			return nil
		})
	})

	t.Run("SharedCell", func(t *testing.T) {
		ref, err := base.Borrow()
		if err != nil {
			t.Fatalf("shared borrow through projection failed: %v", err)
		}
		if _, err := h.BorrowMut(); !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("borrow through base view must exclude writes through derived view, got %v", err)
		}
		ref.Release()

		mut, err := h.BorrowMut()
		if err != nil {
			t.Fatalf("exclusive borrow failed: %v", err)
		}
		if _, err := base.Borrow(); !errors.Is(err, ErrBorrowConflict) {
			t.Errorf("write through derived view must exclude reads through base view, got %v", err)
		}
		mut.Release()
	})

	t.Run("MutationVisibleAcrossViews", func(t *testing.T) {
		if err := base.Write(func(b *testBase) error {
			b.id = "renamed"
			return nil
		}); err != nil {
			t.Fatalf("write through base view failed: %v", err)
		}
		_ = h.Read(func(d *leadingNode) error {
			if d.id != "renamed" {
				t.Errorf("expected derived view to observe base mutation, got %q", d.id)
			}
			return nil
		})
	})
}

func TestWrapBaseAddressSharesCell(t *testing.T) {
	// A node and its leading embedded base have the same address, so
	// wrapping either resolves to the same tracker cell.
	l := NewLedger()
	n := &leadingNode{}

	derived := Wrap(l, n)
	base := Wrap(l, &n.testBase)

	mut, err := derived.BorrowMut()
	if err != nil {
		t.Fatalf("exclusive borrow failed: %v", err)
	}
	if _, err := base.Borrow(); !errors.Is(err, ErrBorrowConflict) {
		t.Errorf("base-address wrap must share the derived node's tracker, got %v", err)
	}
	mut.Release()
}
