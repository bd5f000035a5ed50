package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
	mode   config.Mode
}

// WithEngine sets the engine. A serial engine is created when none is set.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the evaluation unit.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithMode sets what Run does with the mapped instruction.
func (b DriverBuilder) WithMode(mode config.Mode) DriverBuilder {
	b.mode = mode
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.mode != config.Render && !b.mode.Evaluates() {
		panic(fmt.Sprintf("driver %s: unknown mode %v", name, b.mode))
	}

	d := &driverImpl{
		engine: b.engine,
		mode:   b.mode,
	}

	if d.engine == nil {
		d.engine = sim.NewSerialEngine()
	}

	if b.mode.Evaluates() {
		d.unit = core.NewBuilder().
			WithEngine(d.engine).
			WithFreq(b.freq).
			WithMode(b.mode).
			Build(name + ".Unit")
	}

	return d
}
