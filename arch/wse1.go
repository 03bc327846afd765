package arch

import (
	"github.com/sarchlab/gridlink/grid"
)

// Named dynamic fallback windows of the WSE1 window table.
const (
	RegTLB            = "REG_TLB"
	SmallReadWriteTLB = "SMALL_READ_WRITE_TLB"
	LargeReadTLB      = "LARGE_READ_TLB"
	LargeWriteTLB     = "LARGE_WRITE_TLB"
)

// WSE1 returns the reference architecture: a 10x12 grid with an 8x10
// worker mesh, 6 DRAM banks with 3 NoC ports each, 16 ethernet cores,
// one ARC and one PCIe core. Up to 10 worker rows can be harvested;
// DRAM and ethernet harvesting are not supported.
func WSE1() Spec {
	s := Spec{
		Name: "wse1",

		GridWidth:  10,
		GridHeight: 12,

		TensixCols: []int{1, 2, 3, 4, 6, 7, 8, 9},
		TensixRows: []int{1, 2, 3, 4, 5, 7, 8, 9, 10, 11},

		EthCols: []int{1, 2, 3, 4, 6, 7, 8, 9},
		EthRows: []int{0, 6},

		DRAMBanks: [][]grid.XY{
			{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 11}},
			{{X: 0, Y: 5}, {X: 0, Y: 6}, {X: 0, Y: 7}},
			{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 11}},
			{{X: 5, Y: 2}, {X: 5, Y: 9}, {X: 5, Y: 10}},
			{{X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 8}},
			{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
		},

		ArcCores:  []grid.XY{{X: 0, Y: 10}},
		PCIeCores: []grid.XY{{X: 0, Y: 4}},

		TranslatedOffsets: map[grid.CoreType]grid.XY{
			grid.Tensix: {X: 18, Y: 18},
			grid.Eth:    {X: 18, Y: 16},
		},

		HarvestableRows: map[grid.CoreType]int{
			grid.Tensix: 10,
		},

		Fallbacks: map[string]int{
			RegTLB:            156,
			SmallReadWriteTLB: 157,
			LargeReadTLB:      166,
			LargeWriteTLB:     167,
		},
		DefaultFallback: SmallReadWriteTLB,

		AddressMap: AddressMap{
			L1Size:         0x170000,
			DataBufferBase: 0x33000,
			BarrierBase:    0x16dfc0,
			BarrierSet:     170,
			BarrierReset:   187,
		},

		PCIeBase: 0x8_0000_0000,
		AddrBits: 52,

		SysmemBytes:    4 << 20,
		NumDMAChannels: 1,

		nocXShift: 46,
		nocYShift: 40,
	}

	for id := 0; id < 156; id++ {
		s.Windows = append(s.Windows, WindowSpec{ID: id, Size: 1 << 20})
	}
	for id := 156; id < 166; id++ {
		s.Windows = append(s.Windows, WindowSpec{ID: id, Size: 2 << 20})
	}
	for id := 166; id < 170; id++ {
		s.Windows = append(s.Windows, WindowSpec{ID: id, Size: 16 << 20})
	}

	return s
}
