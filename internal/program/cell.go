package program

import (
	"sync/atomic"

	"github.com/rpreston/whetstone/internal/value"
	"github.com/rpreston/whetstone/internal/wserrors"
)

// VariableCell is a named, interior-mutable slot shared by strong
// reference between a compiled expression's variable map and every
// variable atom that references it by name.
//
// This is the Go analogue of the original's Rc<RefCell<T>>: instead of
// RefCell's panic-on-reentrant-borrow discipline, contention is
// reported as VariableAccessError. Because Go has no RAII borrow
// guards, access is not checked out and released by the caller; each
// Get/Set is itself the critical section, held only as long as the
// operation takes.
type VariableCell struct {
	name  string
	busy  int32
	value value.Kind
}

// NewVariableCell creates a cell initialized to zero for its family.
func NewVariableCell(name string, zero value.Kind) *VariableCell {
	return &VariableCell{name: name, value: zero}
}

// Name returns the variable's name.
func (c *VariableCell) Name() string { return c.name }

// Get reads the cell's current value.
func (c *VariableCell) Get() (value.Kind, error) {
	if !atomic.CompareAndSwapInt32(&c.busy, 0, 1) {
		return nil, wserrors.New(wserrors.VariableAccessError, "variable %q is already being accessed", c.name)
	}
	defer atomic.StoreInt32(&c.busy, 0)
	return c.value, nil
}

// Set replaces the cell's current value.
func (c *VariableCell) Set(v value.Kind) error {
	if !atomic.CompareAndSwapInt32(&c.busy, 0, 1) {
		return wserrors.New(wserrors.VariableAccessError, "variable %q is already being accessed", c.name)
	}
	defer atomic.StoreInt32(&c.busy, 0)
	c.value = v
	return nil
}
