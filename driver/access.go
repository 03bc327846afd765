package driver

import (
	"github.com/sarchlab/gridlink/grid"
)

func (s *session) Write(
	data []byte,
	core grid.CoreCoord,
	addr uint64,
	window string,
) error {
	return s.access(core, addr, len(data), window,
		func(id int, offset uint64, lo, hi int) error {
			return s.dev.WriteBlock(id, offset, data[lo:hi])
		})
}

func (s *session) Read(
	buf []byte,
	core grid.CoreCoord,
	addr uint64,
	window string,
) error {
	return s.access(core, addr, len(buf), window,
		func(id int, offset uint64, lo, hi int) error {
			return s.dev.ReadBlock(id, offset, buf[lo:hi])
		})
}

// access routes one transfer: the static fast path when the core has a
// pre-bound window covering the whole range and no window was named,
// otherwise span-sized chunks through a dynamic fallback window.
func (s *session) access(
	core grid.CoreCoord,
	addr uint64,
	n int,
	window string,
	copyBlock func(id int, offset uint64, lo, hi int) error,
) error {
	phys, err := s.coords.To(core, grid.Physical)
	if err != nil {
		return err
	}

	if err := s.checkRange(phys, addr, n); err != nil {
		return err
	}

	if n == 0 {
		return nil
	}

	target := s.spec.NocAddr(phys.Loc(), addr)

	if window == "" {
		if w, ok := s.pool.StaticWindow(phys.Loc()); ok {
			if target >= w.Base() &&
				target+uint64(n) <= w.Base()+w.Size() {
				return copyBlock(w.ID(), target-w.Base(), 0, n)
			}
		}
	}

	return s.throughDynamic(target, n, window, copyBlock)
}

// throughDynamic holds the per-window lock across the whole transfer so
// the repoint-then-copy sequence of each chunk cannot be redirected by
// another thread reconfiguring the same window.
func (s *session) throughDynamic(
	target uint64,
	n int,
	window string,
	copyBlock func(id int, offset uint64, lo, hi int) error,
) error {
	w, release, err := s.pool.AcquireDynamic(window)
	if err != nil {
		return err
	}
	defer release()

	done := 0
	for done < n {
		chipAddr := target + uint64(done)
		base := chipAddr - chipAddr%w.Size()
		offset := chipAddr - base

		chunk := n - done
		if max := int(w.Size() - offset); chunk > max {
			chunk = max
		}

		if err := w.Point(base); err != nil {
			return err
		}

		s.log.Debug("dynamic window transfer",
			"session", s.name, "window", w.ID(),
			"base", base, "bytes", chunk)

		if err := copyBlock(w.ID(), offset, done, done+chunk); err != nil {
			return err
		}

		done += chunk
	}

	return nil
}
