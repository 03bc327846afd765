// Package driver implements the access engine for a single chip: chunked
// reads and writes through the scarce translation windows, memory
// barriers, and sysmem access, on top of the coordinate manager.
package driver

import (
	"errors"

	"github.com/sarchlab/gridlink/coords"
	"github.com/sarchlab/gridlink/grid"
	"github.com/sarchlab/gridlink/tlb"
)

// ErrTimeout reports that an expected value was not observed within the
// configured deadline.
var ErrTimeout = errors.New("timed out waiting for expected value")

// Driver provides the interface to access one chip. A Driver is safe
// for concurrent use once setup (window configuration) is done.
type Driver interface {
	// ConfigureTLB statically binds a window to a core at the given
	// core-local address for the session's lifetime. Setup only; must
	// complete before concurrent access begins.
	ConfigureTLB(core grid.CoreCoord, windowID int, addr uint64,
		ord tlb.Ordering) error

	// SetCoreToTLBMap records which pre-bound static window serves
	// each of the given cores, so reads and writes route without a
	// per-call lookup. Setup only.
	SetCoreToTLBMap(cores []grid.CoreCoord,
		mapping func(grid.CoreCoord) (int, bool)) error

	// SetFallbackOrdering sets the ordering mode a named dynamic
	// window uses. An empty name selects the default window.
	SetFallbackOrdering(window string, ord tlb.Ordering) error

	// Write copies data to a core-local address. The transfer is
	// split into window-sized chunks issued in ascending address
	// order; there is no atomicity across chunks. An empty window
	// selector uses the core's static window when the range is
	// covered, falling back to the default dynamic window.
	Write(data []byte, core grid.CoreCoord, addr uint64,
		window string) error

	// Read fills buf from a core-local address, with the same window
	// selection and chunking rules as Write.
	Read(buf []byte, core grid.CoreCoord, addr uint64,
		window string) error

	// Membar forces all writes previously issued by the calling
	// thread to the listed cores to complete and become visible
	// before it returns.
	Membar(window string, cores []grid.CoreCoord) error

	// HostDMAAddress returns the host-visible pinned memory backing a
	// sysmem channel.
	HostDMAAddress(channel int) ([]byte, error)

	// PCIeBaseAddress returns the chip-side address at which sysmem
	// is visible through the PCIe core.
	PCIeBaseAddress() uint64

	// Coords returns the session's coordinate manager. The reference
	// is only valid for the session's lifetime.
	Coords() *coords.Manager

	// Close ends the session.
	Close() error
}
