package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/packeval/config"
)

// Builder can create new units.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	mode   config.Mode
}

// NewBuilder returns a builder for a precedence-aware unit at the default
// frequency.
func NewBuilder() Builder {
	return Builder{
		freq: config.DefaultFreq,
		mode: config.Precedence,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the unit.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMode sets the evaluation mode. Render is not an evaluation mode.
func (b Builder) WithMode(mode config.Mode) Builder {
	if !mode.Evaluates() {
		panic("unit needs an evaluating mode, got " + mode.String())
	}
	b.mode = mode
	return b
}

// Build creates a unit.
func (b Builder) Build(name string) *Unit {
	eval, err := ForMode(b.mode)
	if err != nil {
		panic(err)
	}

	freq := b.freq
	if freq == 0 {
		freq = config.DefaultFreq
	}

	u := &Unit{
		mode: b.mode,
		eval: eval,
	}
	u.TickingComponent = sim.NewTickingComponent(name, b.engine, freq, u)

	return u
}
