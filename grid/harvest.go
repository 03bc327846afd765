package grid

import "math/bits"

// HarvestingMask marks defective physical rows (or DRAM banks, depending
// on the architecture) of one core type. Bit i corresponds to the i-th
// entry of the architecture's row list for that type.
type HarvestingMask uint32

// NumHarvested returns the number of rows disabled by the mask.
func (m HarvestingMask) NumHarvested() int {
	return bits.OnesCount32(uint32(m))
}

// Has reports whether row index i is harvested.
func (m HarvestingMask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Harvesting carries the per-core-type masks of one chip instance.
// Types absent from the map are fully functional.
type Harvesting map[CoreType]HarvestingMask

// Mask returns the mask for a core type, zero if none was recorded.
func (h Harvesting) Mask(t CoreType) HarvestingMask {
	return h[t]
}
