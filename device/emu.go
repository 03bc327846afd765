package device

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/grid"
	"github.com/sarchlab/gridlink/tlb"
)

type emuWindow struct {
	size   uint64
	base   uint64
	ord    tlb.Ordering
	mapped bool
}

// Emulator is a software chip implementing Capability against in-memory
// core-local memories and sysmem buffers. It is sequentially
// consistent: ordering modes are recorded but every copy is visible as
// soon as it returns, so poll loops written against real silicon
// terminate immediately here.
type Emulator struct {
	spec arch.Spec

	mu      sync.Mutex
	windows []emuWindow
	mem     map[grid.XY][]byte
	sysmem  [][]byte
}

// NewEmulator creates a software chip for the given architecture. Core
// memories are allocated lazily; each starts with the barrier word set
// to the architecture's reset sentinel, matching what chip bring-up
// leaves behind.
func NewEmulator(spec arch.Spec) *Emulator {
	e := &Emulator{
		spec:    spec,
		windows: make([]emuWindow, spec.WindowCount()),
		mem:     make(map[grid.XY][]byte),
		sysmem:  make([][]byte, spec.NumDMAChannels),
	}

	for i, ws := range spec.Windows {
		e.windows[i].size = ws.Size
	}

	for ch := range e.sysmem {
		e.sysmem[ch] = make([]byte, spec.SysmemBytes)
	}

	return e
}

// MapWindow points a window at a chip-side base address.
func (e *Emulator) MapWindow(id int, base uint64, ord tlb.Ordering) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id < 0 || id >= len(e.windows) {
		return fmt.Errorf("emu: window id %d out of range", id)
	}

	if base+e.windows[id].size > e.spec.AddrSpaceSize() {
		return fmt.Errorf("emu: window %d base %#x past address space",
			id, base)
	}

	e.windows[id].base = base
	e.windows[id].ord = ord
	e.windows[id].mapped = true

	return nil
}

// WriteBlock copies data into the chip through a bound window.
func (e *Emulator) WriteBlock(id int, offset uint64, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	dst, err := e.resolve(id, offset, uint64(len(data)))
	if err != nil {
		return err
	}

	copy(dst, data)
	return nil
}

// ReadBlock fills buf from the chip through a bound window.
func (e *Emulator) ReadBlock(id int, offset uint64, buf []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	src, err := e.resolve(id, offset, uint64(len(buf)))
	if err != nil {
		return err
	}

	copy(buf, src)
	return nil
}

// DMABuffer returns the host-visible slice backing one sysmem channel.
func (e *Emulator) DMABuffer(channel int) ([]byte, error) {
	if channel < 0 || channel >= len(e.sysmem) {
		return nil, fmt.Errorf("emu: no DMA channel %d", channel)
	}
	return e.sysmem[channel], nil
}

// PCIeBase returns the chip-side base address of sysmem.
func (e *Emulator) PCIeBase() uint64 {
	return e.spec.PCIeBase
}

// resolve maps a (window, offset, length) triple onto the backing
// memory slice it addresses. Called with the bus lock held.
func (e *Emulator) resolve(id int, offset, length uint64) ([]byte, error) {
	if id < 0 || id >= len(e.windows) {
		return nil, fmt.Errorf("emu: window id %d out of range", id)
	}

	w := e.windows[id]
	if !w.mapped {
		return nil, fmt.Errorf("emu: window %d is not mapped", id)
	}

	if length == 0 {
		return nil, nil
	}

	if offset+length > w.size {
		return nil, fmt.Errorf(
			"emu: access [%#x,%#x) spills out of window %d (%d bytes)",
			offset, offset+length, id, w.size)
	}

	loc, local := e.spec.DecodeNocAddr(w.base + offset)
	endLoc, _ := e.spec.DecodeNocAddr(w.base + offset + length - 1)
	if loc != endLoc {
		return nil, fmt.Errorf(
			"emu: access through window %d crosses core boundaries", id)
	}

	if loc.X < 0 || loc.X >= e.spec.GridWidth ||
		loc.Y < 0 || loc.Y >= e.spec.GridHeight {
		return nil, fmt.Errorf("emu: no core at (%d,%d)", loc.X, loc.Y)
	}

	if e.isPCIeCore(loc) && local >= e.spec.PCIeBase {
		return e.sysmemSlice(local-e.spec.PCIeBase, length)
	}

	if local+length > e.spec.AddressMap.L1Size {
		return nil, fmt.Errorf(
			"emu: L1 access [%#x,%#x) past %#x on core (%d,%d)",
			local, local+length, e.spec.AddressMap.L1Size, loc.X, loc.Y)
	}

	return e.coreMem(loc)[local : local+length], nil
}

func (e *Emulator) isPCIeCore(loc grid.XY) bool {
	for _, c := range e.spec.PCIeCores {
		if c == loc {
			return true
		}
	}
	return false
}

func (e *Emulator) sysmemSlice(offset, length uint64) ([]byte, error) {
	ch := int(offset / e.spec.SysmemBytes)
	if ch >= len(e.sysmem) {
		return nil, fmt.Errorf("emu: sysmem offset %#x past last channel",
			offset)
	}

	start := offset % e.spec.SysmemBytes
	if start+length > e.spec.SysmemBytes {
		return nil, fmt.Errorf("emu: sysmem access crosses channels")
	}

	return e.sysmem[ch][start : start+length], nil
}

func (e *Emulator) coreMem(loc grid.XY) []byte {
	m, ok := e.mem[loc]
	if !ok {
		m = make([]byte, e.spec.AddressMap.L1Size)
		binary.LittleEndian.PutUint32(
			m[e.spec.AddressMap.BarrierBase:], e.spec.AddressMap.BarrierReset)
		e.mem[loc] = m
	}
	return m
}
