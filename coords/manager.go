// Package coords builds and serves the bidirectional lookup tables among
// the four coordinate systems (Logical, Physical, Virtual, Translated)
// of one chip, for one harvesting configuration.
package coords

import (
	"errors"
	"fmt"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/grid"
)

var (
	// ErrConfiguration reports an invalid or unsupported harvesting
	// configuration. The manager is never created.
	ErrConfiguration = errors.New("invalid harvesting configuration")

	// ErrCoordinate reports a translation request for a harvested-out
	// unit or an unsupported core type / coordinate system pair.
	ErrCoordinate = errors.New("untranslatable coordinate")
)

// Manager owns the per-core-type translation tables. All tables are
// built at construction; a Manager is immutable afterwards and safe for
// concurrent lookups without locking.
type Manager struct {
	spec arch.Spec
	maps map[grid.CoreType]*coordMaps
}

type coordMaps struct {
	logicalToPhysical   map[grid.XY]grid.XY
	physicalToLogical   map[grid.XY]grid.XY
	logicalToVirtual    map[grid.XY]grid.XY
	virtualToLogical    map[grid.XY]grid.XY
	logicalToTranslated map[grid.XY]grid.XY
	translatedToLogical map[grid.XY]grid.XY
}

func newCoordMaps() *coordMaps {
	return &coordMaps{
		logicalToPhysical:   make(map[grid.XY]grid.XY),
		physicalToLogical:   make(map[grid.XY]grid.XY),
		logicalToVirtual:    make(map[grid.XY]grid.XY),
		virtualToLogical:    make(map[grid.XY]grid.XY),
		logicalToTranslated: make(map[grid.XY]grid.XY),
		translatedToLogical: make(map[grid.XY]grid.XY),
	}
}

func (m *coordMaps) add(logical, physical, virtual, translated grid.XY) {
	m.logicalToPhysical[logical] = physical
	m.physicalToLogical[physical] = logical
	m.logicalToVirtual[logical] = virtual
	m.virtualToLogical[virtual] = logical
	m.logicalToTranslated[logical] = translated
	m.translatedToLogical[translated] = logical
}

// NewManager builds the translation tables for one chip. It fails if a
// non-zero harvesting mask is supplied for a core type the architecture
// never harvests, or if the mask names rows beyond the harvestable
// range.
func NewManager(spec arch.Spec, harvesting grid.Harvesting) (*Manager, error) {
	for t, mask := range harvesting {
		if mask == 0 {
			continue
		}

		limit := spec.HarvestableRows[t]
		if limit == 0 {
			return nil, fmt.Errorf(
				"%w: %s cores cannot be harvested on %s",
				ErrConfiguration, t.Name(), spec.Name)
		}

		if mask >= 1<<uint(limit) {
			return nil, fmt.Errorf(
				"%w: mask %#x exceeds the %d harvestable %s rows of %s",
				ErrConfiguration, uint32(mask), limit, t.Name(), spec.Name)
		}
	}

	m := &Manager{
		spec: spec,
		maps: make(map[grid.CoreType]*coordMaps),
	}

	m.buildTensix(harvesting.Mask(grid.Tensix))
	m.buildEth()
	m.buildDRAM()
	m.buildFixed(grid.ARC, spec.ArcCores)
	m.buildFixed(grid.PCIe, spec.PCIeCores)

	return m, nil
}

// buildTensix assigns logical coordinates densely over the functional
// rows in row-list order. Virtual rows keep the full row-list order
// regardless of harvesting, so the virtual location of a logical
// coordinate never depends on which rows were removed. Physical rows
// skip the harvested ones.
func (m *Manager) buildTensix(mask grid.HarvestingMask) {
	spec := m.spec
	tables := newCoordMaps()
	offset := spec.TranslatedOffsets[grid.Tensix]

	var functionalRows []int
	for i, row := range spec.TensixRows {
		if !mask.Has(i) {
			functionalRows = append(functionalRows, row)
		}
	}

	for y, physRow := range functionalRows {
		for x, col := range spec.TensixCols {
			logical := grid.XY{X: x, Y: y}
			physical := grid.XY{X: col, Y: physRow}
			virtual := grid.XY{X: col, Y: spec.TensixRows[y]}
			translated := grid.XY{X: x + offset.X, Y: y + offset.Y}
			tables.add(logical, physical, virtual, translated)
		}
	}

	m.maps[grid.Tensix] = tables
}

func (m *Manager) buildEth() {
	spec := m.spec
	tables := newCoordMaps()
	offset := spec.TranslatedOffsets[grid.Eth]

	for y, row := range spec.EthRows {
		for x, col := range spec.EthCols {
			logical := grid.XY{X: x, Y: y}
			physical := grid.XY{X: col, Y: row}
			translated := grid.XY{X: x + offset.X, Y: y + offset.Y}
			tables.add(logical, physical, physical, translated)
		}
	}

	m.maps[grid.Eth] = tables
}

// buildDRAM maps logical (bank, port) pairs onto the bank/port table.
func (m *Manager) buildDRAM() {
	tables := newCoordMaps()

	for bank, ports := range m.spec.DRAMBanks {
		for port, physical := range ports {
			logical := grid.XY{X: bank, Y: port}
			tables.add(logical, physical, physical, physical)
		}
	}

	m.maps[grid.DRAM] = tables
}

// buildFixed covers the core types with a fixed, never-harvested core
// list. Physical, virtual and translated coincide.
func (m *Manager) buildFixed(t grid.CoreType, cores []grid.XY) {
	tables := newCoordMaps()

	for i, physical := range cores {
		logical := grid.XY{X: i, Y: 0}
		tables.add(logical, physical, physical, physical)
	}

	m.maps[t] = tables
}

// To translates a coordinate into the target system. The input is first
// resolved to its logical coordinate, which fails for harvested-out
// units and for locations outside the functional grid.
func (m *Manager) To(c grid.CoreCoord, target grid.CoordSystem) (grid.CoreCoord, error) {
	tables, ok := m.maps[c.Type]
	if !ok {
		return grid.CoreCoord{}, fmt.Errorf(
			"%w: no %s cores on %s", ErrCoordinate, c.Type.Name(), m.spec.Name)
	}

	logical, err := tables.toLogical(c)
	if err != nil {
		return grid.CoreCoord{}, err
	}

	var loc grid.XY
	switch target {
	case grid.Logical:
		loc = logical
	case grid.Physical:
		loc = tables.logicalToPhysical[logical]
	case grid.Virtual:
		loc = tables.logicalToVirtual[logical]
	case grid.Translated:
		loc = tables.logicalToTranslated[logical]
	default:
		return grid.CoreCoord{}, fmt.Errorf(
			"%w: unknown target system %d", ErrCoordinate, target)
	}

	return grid.NewCoord(loc.X, loc.Y, c.Type, target), nil
}

func (t *coordMaps) toLogical(c grid.CoreCoord) (grid.XY, error) {
	var (
		logical grid.XY
		ok      bool
	)

	switch c.System {
	case grid.Logical:
		_, ok = t.logicalToPhysical[c.Loc()]
		logical = c.Loc()
	case grid.Physical:
		logical, ok = t.physicalToLogical[c.Loc()]
	case grid.Virtual:
		logical, ok = t.virtualToLogical[c.Loc()]
	case grid.Translated:
		logical, ok = t.translatedToLogical[c.Loc()]
	}

	if !ok {
		return grid.XY{}, fmt.Errorf(
			"%w: %s is not a functional core", ErrCoordinate, c)
	}

	return logical, nil
}
