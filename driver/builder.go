package driver

import (
	"log/slog"
	"time"

	"github.com/sarchlab/gridlink/arch"
	"github.com/sarchlab/gridlink/coords"
	"github.com/sarchlab/gridlink/device"
	"github.com/sarchlab/gridlink/grid"
	"github.com/sarchlab/gridlink/tlb"
)

// SessionBuilder creates chip sessions. Construction is strictly
// single-threaded; the returned Driver may then be shared across
// threads.
type SessionBuilder struct {
	spec           arch.Spec
	dev            device.Capability
	harvesting     grid.Harvesting
	log            *slog.Logger
	barrierTimeout time.Duration
}

// WithArch sets the chip architecture.
func (b SessionBuilder) WithArch(spec arch.Spec) SessionBuilder {
	b.spec = spec
	return b
}

// WithDevice sets the opened capability handle of the chip.
func (b SessionBuilder) WithDevice(dev device.Capability) SessionBuilder {
	b.dev = dev
	return b
}

// WithHarvesting sets the per-core-type harvesting masks of this chip
// instance.
func (b SessionBuilder) WithHarvesting(h grid.Harvesting) SessionBuilder {
	b.harvesting = h
	return b
}

// WithLogger sets the logger.
func (b SessionBuilder) WithLogger(log *slog.Logger) SessionBuilder {
	b.log = log
	return b
}

// WithBarrierTimeout bounds how long Membar polls for its sentinel.
func (b SessionBuilder) WithBarrierTimeout(d time.Duration) SessionBuilder {
	b.barrierTimeout = d
	return b
}

// Build creates a chip session. It fails, without partial construction,
// when the harvesting configuration is invalid for the architecture.
func (b SessionBuilder) Build(name string) (Driver, error) {
	cm, err := coords.NewManager(b.spec, b.harvesting)
	if err != nil {
		return nil, err
	}

	s := &session{
		name:           name,
		spec:           b.spec,
		dev:            b.dev,
		coords:         cm,
		pool:           tlb.NewPool(b.spec, b.dev),
		log:            b.log,
		barrierTimeout: b.barrierTimeout,
	}

	if s.log == nil {
		s.log = slog.Default()
	}

	if s.barrierTimeout == 0 {
		s.barrierTimeout = 10 * time.Second
	}

	s.log.Info("chip session created",
		"session", name,
		"arch", b.spec.Name,
		"harvested", b.harvesting.Mask(grid.Tensix).NumHarvested())

	return s, nil
}
