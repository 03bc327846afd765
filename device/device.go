// Package device defines the boundary with the device-open collaborator:
// an already-opened capability to program translation windows, perform
// raw bus copies through them, and expose pinned DMA memory. The driver
// never opens the underlying PCIe device or allocates hugepages itself.
package device

import (
	"github.com/sarchlab/gridlink/tlb"
)

// Capability is the raw MMIO/DMA handle of one opened chip.
type Capability interface {
	// MapWindow binds window id to a chip-side base address with the
	// given ordering mode.
	MapWindow(id int, base uint64, ord tlb.Ordering) error

	// WriteBlock copies data into the chip through a bound window,
	// starting at the given offset inside the window's aperture.
	WriteBlock(id int, offset uint64, data []byte) error

	// ReadBlock fills buf from the chip through a bound window.
	ReadBlock(id int, offset uint64, buf []byte) error

	// DMABuffer returns the host-visible pinned memory backing one
	// sysmem channel.
	DMABuffer(channel int) ([]byte, error)

	// PCIeBase returns the chip-side address at which sysmem is
	// visible through the PCIe core.
	PCIeBase() uint64
}
