package driver

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/coords"
	"github.com/sarchlab/gridlink/device"
	"github.com/sarchlab/gridlink/grid"
	"github.com/sarchlab/gridlink/tlb"
)

type session struct {
	name string
	spec arch.Spec
	dev  device.Capability

	coords *coords.Manager
	pool   *tlb.Pool
	log    *slog.Logger

	barrierTimeout time.Duration

	// membarMu serializes barrier sentinel exchanges. Two interleaved
	// set/reset sequences on overlapping cores would leave a poll
	// observing the other thread's reset.
	membarMu sync.Mutex
}

func (s *session) ConfigureTLB(
	core grid.CoreCoord,
	windowID int,
	addr uint64,
	ord tlb.Ordering,
) error {
	phys, err := s.coords.To(core, grid.Physical)
	if err != nil {
		return err
	}

	base := s.spec.NocAddr(phys.Loc(), addr)
	return s.pool.Configure(phys.Loc(), windowID, base, ord)
}

func (s *session) SetCoreToTLBMap(
	cores []grid.CoreCoord,
	mapping func(grid.CoreCoord) (int, bool),
) error {
	locs := make([]grid.XY, 0, len(cores))
	byLoc := make(map[grid.XY]grid.CoreCoord, len(cores))

	for _, core := range cores {
		phys, err := s.coords.To(core, grid.Physical)
		if err != nil {
			return err
		}
		locs = append(locs, phys.Loc())
		byLoc[phys.Loc()] = core
	}

	return s.pool.SetCoreToWindowMap(locs, func(loc grid.XY) (int, bool) {
		return mapping(byLoc[loc])
	})
}

func (s *session) SetFallbackOrdering(window string, ord tlb.Ordering) error {
	return s.pool.SetFallbackOrdering(window, ord)
}

func (s *session) HostDMAAddress(channel int) ([]byte, error) {
	return s.dev.DMABuffer(channel)
}

func (s *session) PCIeBaseAddress() uint64 {
	return s.dev.PCIeBase()
}

func (s *session) Coords() *coords.Manager {
	return s.coords
}

func (s *session) Close() error {
	s.log.Info("chip session closed", "session", s.name)
	return nil
}

// checkRange rejects targets outside the core's addressable space
// before any bus activity is issued.
func (s *session) checkRange(phys grid.CoreCoord, addr uint64, n int) error {
	end := addr + uint64(n)
	if end < addr {
		return fmt.Errorf("%w: address %#x + %d overflows",
			tlb.ErrAddressRange, addr, n)
	}

	if end <= s.spec.AddressMap.L1Size {
		return nil
	}

	if phys.Type == grid.PCIe {
		sysmemEnd := s.spec.PCIeBase +
			s.spec.SysmemBytes*uint64(s.spec.NumDMAChannels)
		if addr >= s.spec.PCIeBase && end <= sysmemEnd {
			return nil
		}
	}

	return fmt.Errorf("%w: [%#x,%#x) is not addressable on %s",
		tlb.ErrAddressRange, addr, end, phys)
}
