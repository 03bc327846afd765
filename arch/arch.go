// Package arch provides immutable per-architecture configuration for the
// accelerator chips the driver can talk to. A Spec is built once and
// passed explicitly to the components that need it.
package arch

import (
	"github.com/sarchlab/gridlink/grid"
)

// WindowSpec describes one hardware translation window: its id in the
// window table and the fixed byte span it can cover.
type WindowSpec struct {
	ID   int
	Size uint64
}

// AddressMap carries the fixed L1 memory layout of a core.
type AddressMap struct {
	// L1Size is the number of addressable bytes of core-local memory.
	L1Size uint64

	// DataBufferBase is where the per-core data buffer space starts.
	DataBufferBase uint64

	// BarrierBase is the reserved offset holding the memory barrier
	// word. The word idles at BarrierReset; a barrier writes
	// BarrierSet, polls until it is observed, then restores
	// BarrierReset.
	BarrierBase  uint64
	BarrierSet   uint32
	BarrierReset uint32
}

// Spec is the full description of one chip architecture.
type Spec struct {
	Name string

	// Full physical grid dimensions, including harvested rows.
	GridWidth, GridHeight int

	// Physical column/row positions of the worker (tensix) grid. A
	// harvesting mask bit i disables TensixRows[i].
	TensixCols, TensixRows []int

	// Physical column/row positions of the ethernet grid.
	EthCols, EthRows []int

	// DRAMBanks[bank][port] is the physical location of one NoC port
	// of one DRAM bank.
	DRAMBanks [][]grid.XY

	ArcCores  []grid.XY
	PCIeCores []grid.XY

	// TranslatedOffsets is applied to the logical frame to form
	// translated coordinates. Core types absent from the map use
	// their physical coordinates unchanged.
	TranslatedOffsets map[grid.CoreType]grid.XY

	// HarvestableRows gives, per core type, how many rows the
	// architecture can harvest. Types absent from the map are never
	// harvested and reject a non-zero mask.
	HarvestableRows map[grid.CoreType]int

	// Windows is the fixed hardware window table.
	Windows []WindowSpec

	// Fallbacks names the windows reserved for dynamic
	// reconfiguration. DefaultFallback is used when a caller does not
	// name a window.
	Fallbacks       map[string]int
	DefaultFallback string

	AddressMap AddressMap

	// PCIeBase is the chip-side base address at which host sysmem is
	// visible through the PCIe core.
	PCIeBase uint64

	// AddrBits bounds the chip-side address space: valid addresses
	// are below 1<<AddrBits.
	AddrBits uint

	SysmemBytes    uint64
	NumDMAChannels int

	nocXShift, nocYShift uint
}

// AddrSpaceSize returns the number of addressable chip-side bytes.
func (s Spec) AddrSpaceSize() uint64 {
	return 1 << s.AddrBits
}

// NocAddr encodes a core location and a core-local address into a flat
// chip-side bus address.
func (s Spec) NocAddr(loc grid.XY, addr uint64) uint64 {
	return uint64(loc.X)<<s.nocXShift | uint64(loc.Y)<<s.nocYShift | addr
}

// DecodeNocAddr splits a flat chip-side bus address back into a core
// location and a core-local address.
func (s Spec) DecodeNocAddr(a uint64) (grid.XY, uint64) {
	loc := grid.XY{
		X: int(a >> s.nocXShift),
		Y: int((a >> s.nocYShift) & ((1 << (s.nocXShift - s.nocYShift)) - 1)),
	}
	return loc, a & ((1 << s.nocYShift) - 1)
}

// WindowCount returns the number of hardware windows in the table.
func (s Spec) WindowCount() int {
	return len(s.Windows)
}
