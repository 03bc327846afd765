package driver

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/sarchlab/gridlink/grid"
	"github.com/sarchlab/gridlink/poll"
)

const barrierPollInterval = 10 * time.Microsecond

// Membar writes the set sentinel to the barrier word of every listed
// core, polls each until the sentinel is observed, then restores the
// reset sentinel. Observing the sentinel implies every write queued
// before it on the same path has landed.
func (s *session) Membar(window string, cores []grid.CoreCoord) error {
	s.membarMu.Lock()
	defer s.membarMu.Unlock()

	am := s.spec.AddressMap

	set := make([]byte, 4)
	binary.LittleEndian.PutUint32(set, am.BarrierSet)
	reset := make([]byte, 4)
	binary.LittleEndian.PutUint32(reset, am.BarrierReset)

	for _, core := range cores {
		if err := s.Write(set, core, am.BarrierBase, window); err != nil {
			return err
		}
	}

	for _, core := range cores {
		if err := s.awaitBarrier(core, window, set); err != nil {
			return err
		}
	}

	for _, core := range cores {
		if err := s.Write(reset, core, am.BarrierBase, window); err != nil {
			return err
		}
	}

	return nil
}

func (s *session) awaitBarrier(
	core grid.CoreCoord,
	window string,
	want []byte,
) error {
	got := make([]byte, len(want))

	matched, err := poll.Until(s.barrierTimeout, barrierPollInterval,
		func() (bool, error) {
			err := s.Read(got, core, s.spec.AddressMap.BarrierBase, window)
			if err != nil {
				return false, err
			}
			return bytes.Equal(got, want), nil
		})
	if err != nil {
		return err
	}

	if !matched {
		return fmt.Errorf("%w: barrier sentinel not observed on %s after %v",
			ErrTimeout, core, s.barrierTimeout)
	}

	return nil
}
