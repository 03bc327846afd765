package coords

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/grid"
)

var _ = Describe("Manager", func() {
	var spec arch.Spec

	BeforeEach(func() {
		spec = arch.WSE1()
	})

	newManager := func(mask grid.HarvestingMask) *Manager {
		m, err := NewManager(spec,
			grid.Harvesting{grid.Tensix: mask})
		Expect(err).ToNot(HaveOccurred())
		return m
	}

	translate := func(
		m *Manager,
		c grid.CoreCoord,
		target grid.CoordSystem,
	) grid.CoreCoord {
		out, err := m.To(c, target)
		Expect(err).ToNot(HaveOccurred())
		return out
	}

	It("should make physical equal virtual without harvesting", func() {
		m := newManager(0)

		for x := 0; x < len(spec.TensixCols); x++ {
			for y := 0; y < len(spec.TensixRows); y++ {
				logical := grid.NewCoord(x, y, grid.Tensix, grid.Logical)
				virtual := translate(m, logical, grid.Virtual)
				physical := translate(m, logical, grid.Physical)

				Expect(physical.X).To(Equal(virtual.X))
				Expect(physical.Y).To(Equal(virtual.Y))
			}
		}
	})

	It("should map the top-left worker with the first row harvested", func() {
		m := newManager(1)

		logical := grid.NewCoord(0, 0, grid.Tensix, grid.Logical)

		// The virtual location never depends on which rows were
		// removed; the physical location skips the harvested row.
		Expect(translate(m, logical, grid.Virtual)).
			To(Equal(grid.NewCoord(1, 1, grid.Tensix, grid.Virtual)))
		Expect(translate(m, logical, grid.Physical)).
			To(Equal(grid.NewCoord(1, 2, grid.Tensix, grid.Physical)))
	})

	It("should keep logical-to-physical a bijection under every mask", func() {
		for mask := grid.HarvestingMask(0); mask < 1<<10; mask++ {
			m := newManager(mask)

			rows := len(spec.TensixRows) - mask.NumHarvested()
			seen := make(map[grid.XY]grid.CoreCoord)

			for x := 0; x < len(spec.TensixCols); x++ {
				for y := 0; y < rows; y++ {
					logical := grid.NewCoord(x, y, grid.Tensix, grid.Logical)
					physical := translate(m, logical, grid.Physical)

					Expect(seen).ToNot(HaveKey(physical.Loc()))
					seen[physical.Loc()] = logical

					back := translate(m, physical, grid.Logical)
					Expect(back).To(Equal(logical))
				}
			}

			Expect(seen).To(HaveLen(rows * len(spec.TensixCols)))
		}
	})

	It("should keep logical-to-virtual a bijection under every mask", func() {
		for mask := grid.HarvestingMask(0); mask < 1<<10; mask++ {
			m := newManager(mask)

			rows := len(spec.TensixRows) - mask.NumHarvested()
			seen := make(map[grid.XY]bool)

			for x := 0; x < len(spec.TensixCols); x++ {
				for y := 0; y < rows; y++ {
					logical := grid.NewCoord(x, y, grid.Tensix, grid.Logical)
					virtual := translate(m, logical, grid.Virtual)

					Expect(seen[virtual.Loc()]).To(BeFalse())
					seen[virtual.Loc()] = true

					back := translate(m, virtual, grid.Logical)
					Expect(back).To(Equal(logical))
				}
			}
		}
	})

	It("should pin the top-left translated coordinate under every mask", func() {
		want := grid.NewCoord(18, 18, grid.Tensix, grid.Translated)

		// The full mask leaves no (0,0) worker to translate.
		for mask := grid.HarvestingMask(0); mask < 1<<10-1; mask++ {
			m := newManager(mask)

			logical := grid.NewCoord(0, 0, grid.Tensix, grid.Logical)
			physical := translate(m, logical, grid.Physical)
			virtual := translate(m, logical, grid.Virtual)

			Expect(translate(m, logical, grid.Translated)).To(Equal(want))
			Expect(translate(m, physical, grid.Translated)).To(Equal(want))
			Expect(translate(m, virtual, grid.Translated)).To(Equal(want))
		}
	})

	It("should map DRAM banks onto the bank/port table", func() {
		m := newManager(0)

		for bank, ports := range spec.DRAMBanks {
			for port, loc := range ports {
				logical := grid.NewCoord(bank, port, grid.DRAM, grid.Logical)
				physical := translate(m, logical, grid.Physical)

				Expect(physical).To(Equal(grid.NewCoord(
					loc.X, loc.Y, grid.DRAM, grid.Physical)))
				Expect(translate(m, logical, grid.Virtual).Loc()).
					To(Equal(physical.Loc()))
			}
		}
	})

	It("should keep ethernet physical equal virtual", func() {
		m := newManager(0)

		for x := 0; x < len(spec.EthCols); x++ {
			for y := 0; y < len(spec.EthRows); y++ {
				logical := grid.NewCoord(x, y, grid.Eth, grid.Logical)
				virtual := translate(m, logical, grid.Virtual)
				physical := translate(m, logical, grid.Physical)

				Expect(virtual.Loc()).To(Equal(physical.Loc()))
			}
		}
	})

	It("should offset translated ethernet coordinates", func() {
		m := newManager(0)

		for x := 0; x < len(spec.EthCols); x++ {
			for y := 0; y < len(spec.EthRows); y++ {
				logical := grid.NewCoord(x, y, grid.Eth, grid.Logical)
				translated := translate(m, logical, grid.Translated)

				Expect(translated.X).To(Equal(x + 18))
				Expect(translated.Y).To(Equal(y + 16))
			}
		}
	})

	It("should keep ARC coordinates identical in all wire systems", func() {
		m := newManager(0)

		logical := grid.NewCoord(0, 0, grid.ARC, grid.Logical)
		virtual := translate(m, logical, grid.Virtual)
		physical := translate(m, logical, grid.Physical)
		translated := translate(m, logical, grid.Translated)

		Expect(virtual.Loc()).To(Equal(physical.Loc()))
		Expect(translated.Loc()).To(Equal(physical.Loc()))
	})

	It("should keep PCIe coordinates identical in all wire systems", func() {
		m := newManager(0)

		logical := grid.NewCoord(0, 0, grid.PCIe, grid.Logical)
		virtual := translate(m, logical, grid.Virtual)
		physical := translate(m, logical, grid.Physical)
		translated := translate(m, logical, grid.Translated)

		Expect(virtual.Loc()).To(Equal(physical.Loc()))
		Expect(translated.Loc()).To(Equal(physical.Loc()))
	})

	It("should reject a DRAM harvesting mask", func() {
		_, err := NewManager(spec, grid.Harvesting{grid.DRAM: 1})

		Expect(err).To(MatchError(ErrConfiguration))
	})

	It("should reject a mask naming rows past the harvestable range", func() {
		_, err := NewManager(spec, grid.Harvesting{grid.Tensix: 1 << 10})

		Expect(err).To(MatchError(ErrConfiguration))
	})

	It("should refuse to translate a harvested-out physical core", func() {
		m := newManager(1)

		harvested := grid.NewCoord(1, 1, grid.Tensix, grid.Physical)
		_, err := m.To(harvested, grid.Logical)

		Expect(err).To(MatchError(ErrCoordinate))
	})

	It("should refuse to translate a location off the grid", func() {
		m := newManager(0)

		_, err := m.To(
			grid.NewCoord(100, 100, grid.Tensix, grid.Logical),
			grid.Physical)

		Expect(err).To(MatchError(ErrCoordinate))
	})
})
