package borrow

import (
	"errors"
	"fmt"
)

// ErrBorrowConflict is returned when an access would violate the
// single-writer/many-reader discipline on a node.
var ErrBorrowConflict = errors.New("borrow conflict")

// Cell tracks the outstanding borrows on one node.
//
// state == 0 means the node is free, state > 0 counts shared borrows,
// state == -1 marks an exclusive borrow.
type Cell struct {
	state int
}

func (c *Cell) acquireShared() error {
	if c.state < 0 {
		return fmt.Errorf("%w: shared access requested while an exclusive borrow is outstanding", ErrBorrowConflict)
	}
	c.state++
	return nil
}

func (c *Cell) acquireExclusive() error {
	switch {
	case c.state > 0:
		return fmt.Errorf("%w: exclusive access requested while %d shared borrow(s) are outstanding", ErrBorrowConflict, c.state)
	case c.state < 0:
		return fmt.Errorf("%w: exclusive access requested while an exclusive borrow is outstanding", ErrBorrowConflict)
	}
	c.state = -1
	return nil
}

func (c *Cell) releaseShared() {
	if c.state > 0 {
		c.state--
	}
}

func (c *Cell) releaseExclusive() {
	if c.state == -1 {
		c.state = 0
	}
}
