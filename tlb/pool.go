package tlb

import (
	"errors"
	"fmt"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/grid"
)

var (
	// ErrWindowRange reports a window id outside the hardware table or
	// an unknown fallback window name.
	ErrWindowRange = errors.New("window out of range")

	// ErrConflict reports a static bind to a window that already
	// serves a different core.
	ErrConflict = errors.New("window already bound")

	// ErrExhausted reports that the requested dynamic window is not
	// available for reconfiguration.
	ErrExhausted = errors.New("no usable dynamic window")

	// ErrAddressRange reports a target outside the chip-side address
	// space.
	ErrAddressRange = errors.New("address out of range")
)

// Pool is the fixed-capacity window table of one chip. Static bindings
// are configured during single-threaded session setup and are read-only
// afterwards; only the dynamic fallback windows mutate during the
// concurrent phase, each under its own lock.
type Pool struct {
	dev       Mapper
	addrSpace uint64

	windows      []*Window
	staticByCore map[grid.XY]*Window
	staticCore   map[int]grid.XY
	fallbacks    map[string]*Window
	defaultName  string
}

// NewPool builds the window table described by the architecture. The
// named fallback windows start out dynamic with Posted ordering.
func NewPool(spec arch.Spec, dev Mapper) *Pool {
	p := &Pool{
		dev:          dev,
		addrSpace:    spec.AddrSpaceSize(),
		windows:      make([]*Window, spec.WindowCount()),
		staticByCore: make(map[grid.XY]*Window),
		staticCore:   make(map[int]grid.XY),
		fallbacks:    make(map[string]*Window),
		defaultName:  spec.DefaultFallback,
	}

	for i, ws := range spec.Windows {
		p.windows[i] = &Window{id: ws.ID, size: ws.Size, dev: dev}
	}

	for name, id := range spec.Fallbacks {
		w := p.windows[id]
		w.binding = Dynamic
		p.fallbacks[name] = w
	}

	return p
}

// Configure statically binds a window to a core for the session's
// lifetime. The core location must be the physical coordinate used on
// the wire.
func (p *Pool) Configure(core grid.XY, id int, base uint64, ord Ordering) error {
	w, err := p.window(id)
	if err != nil {
		return err
	}

	if w.binding == Dynamic {
		return fmt.Errorf("%w: window %d is reserved as a fallback",
			ErrConflict, id)
	}

	if w.binding == Static {
		if bound := p.staticCore[id]; bound != core {
			return fmt.Errorf(
				"%w: window %d already serves core (%d,%d)",
				ErrConflict, id, bound.X, bound.Y)
		}
	}

	if base+w.size > p.addrSpace {
		return fmt.Errorf("%w: window %d target %#x spans past %#x",
			ErrAddressRange, id, base, p.addrSpace)
	}

	if err := p.dev.MapWindow(id, base, ord); err != nil {
		return err
	}

	w.binding = Static
	w.base = base
	w.ordering = ord
	p.staticCore[id] = core

	return nil
}

// SetCoreToWindowMap records which pre-bound static window serves each
// of the given cores. The mapping function is pure; cores it declines
// are served by the default dynamic window instead.
func (p *Pool) SetCoreToWindowMap(
	cores []grid.XY,
	mapping func(grid.XY) (int, bool),
) error {
	for _, core := range cores {
		id, ok := mapping(core)
		if !ok {
			continue
		}

		w, err := p.window(id)
		if err != nil {
			return err
		}

		if w.binding != Static {
			return fmt.Errorf(
				"%w: window %d is not statically bound", ErrConflict, id)
		}

		p.staticByCore[core] = w
	}

	return nil
}

// StaticWindow returns the static window serving a core, if one was
// recorded. Read-only during the concurrent phase, so lock-free.
func (p *Pool) StaticWindow(core grid.XY) (*Window, bool) {
	w, ok := p.staticByCore[core]
	return w, ok
}

// SetFallbackOrdering sets the ordering mode a fallback window uses
// when repointed. An empty name selects the default window.
func (p *Pool) SetFallbackOrdering(name string, ord Ordering) error {
	w, err := p.fallback(name)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.ordering = ord
	w.mu.Unlock()

	return nil
}

// AcquireDynamic locks the named fallback window for exclusive
// reconfiguration and transfer. An empty name selects the default
// window. The returned release function must be called once the caller
// is done issuing transfers through the window.
func (p *Pool) AcquireDynamic(name string) (*Window, func(), error) {
	w, err := p.fallback(name)
	if err != nil {
		return nil, nil, err
	}

	w.mu.Lock()

	if w.binding != Dynamic {
		w.mu.Unlock()
		return nil, nil, fmt.Errorf(
			"%w: window %d is no longer dynamic", ErrExhausted, w.id)
	}

	return w, w.mu.Unlock, nil
}

func (p *Pool) window(id int) (*Window, error) {
	if id < 0 || id >= len(p.windows) {
		return nil, fmt.Errorf("%w: window id %d, table holds %d",
			ErrWindowRange, id, len(p.windows))
	}
	return p.windows[id], nil
}

func (p *Pool) fallback(name string) (*Window, error) {
	if name == "" {
		name = p.defaultName
	}

	w, ok := p.fallbacks[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown fallback window %q",
			ErrWindowRange, name)
	}

	return w, nil
}
