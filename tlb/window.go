// Package tlb manages the fixed set of hardware translation windows of
// one chip. Windows are scarce: a handful of register sets each mapping
// a bounded host-visible aperture onto a chip-side base address.
package tlb

import (
	"sync"
)

// Ordering selects how the bus treats writes through a window.
type Ordering int

const (
	// Posted writes are fire-and-forget. The device may buffer and
	// reorder them.
	Posted Ordering = iota

	// Strict writes complete before the issuing call returns.
	Strict
)

// Name returns the name of the ordering mode.
func (o Ordering) Name() string {
	switch o {
	case Posted:
		return "Posted"
	case Strict:
		return "Strict"
	default:
		panic("invalid ordering mode")
	}
}

// Binding describes how a window is currently used.
type Binding int

const (
	Unbound Binding = iota
	Static
	Dynamic
)

// Mapper programs a hardware window to a chip-side base address. The
// device-open collaborator provides the implementation.
type Mapper interface {
	MapWindow(id int, base uint64, ord Ordering) error
}

// Window is one hardware translation register set. Its byte span is
// fixed at construction; only the target is mutable. Dynamic windows
// are repointed under the per-window lock held via Pool.AcquireDynamic.
type Window struct {
	id   int
	size uint64
	dev  Mapper

	mu       sync.Mutex
	base     uint64
	ordering Ordering
	binding  Binding
}

// ID returns the window's index in the hardware window table.
func (w *Window) ID() int {
	return w.id
}

// Size returns the fixed byte span the window can cover.
func (w *Window) Size() uint64 {
	return w.size
}

// Base returns the chip-side address the window currently targets.
func (w *Window) Base() uint64 {
	return w.base
}

// Ordering returns the window's configured ordering mode.
func (w *Window) Ordering() Ordering {
	return w.ordering
}

// Binding returns how the window is currently bound.
func (w *Window) Binding() Binding {
	return w.binding
}

// Point reprograms the window to target base. The caller must hold the
// window via Pool.AcquireDynamic; a repoint racing an in-flight
// transfer through the same window would silently redirect it.
func (w *Window) Point(base uint64) error {
	if err := w.dev.MapWindow(w.id, base, w.ordering); err != nil {
		return err
	}
	w.base = base
	return nil
}
