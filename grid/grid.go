// Package grid defines the commonly used data structures for addressing
// cores on a tiled accelerator.
package grid

import "fmt"

// CoreType identifies the kind of unit sitting at a grid location.
type CoreType int

const (
	Tensix CoreType = iota
	DRAM
	Eth
	ARC
	PCIe
)

// Name returns the name of the core type.
func (t CoreType) Name() string {
	switch t {
	case Tensix:
		return "Tensix"
	case DRAM:
		return "DRAM"
	case Eth:
		return "Eth"
	case ARC:
		return "ARC"
	case PCIe:
		return "PCIe"
	default:
		panic("invalid core type")
	}
}

// CoordSystem identifies one of the four address spaces a core can be
// named in.
type CoordSystem int

const (
	Logical CoordSystem = iota
	Physical
	Virtual
	Translated
)

// Name returns the name of the coordinate system.
func (s CoordSystem) Name() string {
	switch s {
	case Logical:
		return "Logical"
	case Physical:
		return "Physical"
	case Virtual:
		return "Virtual"
	case Translated:
		return "Translated"
	default:
		panic("invalid coordinate system")
	}
}

// XY is a bare grid location.
type XY struct {
	X, Y int
}

// CoreCoord names one core in one coordinate system. Two CoreCoords are
// only meaningfully comparable within the same system.
type CoreCoord struct {
	X, Y   int
	Type   CoreType
	System CoordSystem
}

// NewCoord creates a CoreCoord.
func NewCoord(x, y int, t CoreType, s CoordSystem) CoreCoord {
	return CoreCoord{X: x, Y: y, Type: t, System: s}
}

// Loc returns the bare location of the coordinate.
func (c CoreCoord) Loc() XY {
	return XY{X: c.X, Y: c.Y}
}

// String formats the coordinate for logs and error messages.
func (c CoreCoord) String() string {
	return fmt.Sprintf("%s(%d,%d)@%s",
		c.Type.Name(), c.X, c.Y, c.System.Name())
}
