package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

// ErrNotMapped is returned for a unit that has no instruction or no source.
var ErrNotMapped = errors.New("no instruction mapped")

// Unit executes one instruction per run on the simulation engine. It fetches
// one chunk per cycle and evaluates once every chunk has arrived.
type Unit struct {
	*sim.TickingComponent

	mode config.Mode
	eval Evaluator

	in      instr.Instruction
	mapped  bool
	src     stream.ChunkSource
	fetched []uint16

	done   bool
	result int64
	err    error
	cycles int
}

// Mode returns the evaluation mode of the unit.
func (u *Unit) Mode() config.Mode {
	return u.mode
}

// MapInstruction sets the instruction to run and clears any earlier result.
func (u *Unit) MapInstruction(in instr.Instruction) {
	u.in = in
	u.mapped = true
	u.fetched = u.fetched[:0]
	u.done = false
	u.result = 0
	u.err = nil
	u.cycles = 0
}

// FeedIn sets the source the unit fetches chunks from.
func (u *Unit) FeedIn(src stream.ChunkSource) {
	u.src = src
}

// Start schedules the first cycle of a run.
func (u *Unit) Start() {
	u.TickLater()
}

// Tick runs the unit for one cycle.
func (u *Unit) Tick() (madeProgress bool) {
	if u.done || !u.mapped || u.src == nil {
		return false
	}

	u.cycles++

	if len(u.fetched) == 0 {
		if v, ok := u.eval.(Validator); ok {
			if err := v.Validate(u.in); err != nil {
				u.finish(0, err)
				return true
			}
		}
	}

	if len(u.fetched) < u.in.ChunkCount() {
		u.fetch()
		return true
	}

	u.finish(u.eval.Evaluate(u.in, stream.NewSliceSource(u.fetched...)))

	return true
}

func (u *Unit) fetch() {
	chunk, err := u.src.NextChunk()
	if err != nil {
		u.finish(0, fmt.Errorf("fetch chunk %d of %d: %w",
			len(u.fetched)+1, u.in.ChunkCount(), err))
		return
	}

	u.fetched = append(u.fetched, chunk)

	Trace("Fetch",
		"Behavior", "Fetch",
		"Time", float64(u.Engine.CurrentTime()*1e9),
		"Unit", u.Name(),
		"Chunk", chunk,
		"Index", len(u.fetched)-1,
	)
}

func (u *Unit) finish(result int64, err error) {
	u.done = true
	u.result = result
	u.err = err

	Trace("Execute",
		"Behavior", "Finish",
		"Time", float64(u.Engine.CurrentTime()*1e9),
		"Unit", u.Name(),
		"Mode", u.mode.String(),
		"Result", result,
		"Err", err,
	)
	logResult(u)
}

// Done reports whether the mapped instruction has finished.
func (u *Unit) Done() bool {
	return u.done
}

// Result returns the outcome of the last run. A failed run never carries a
// partial result.
func (u *Unit) Result() (int64, error) {
	if !u.mapped || u.src == nil {
		return 0, ErrNotMapped
	}

	if !u.done {
		return 0, fmt.Errorf("%s has not finished", u.Name())
	}

	return u.result, u.err
}

// Cycles returns the number of cycles the last run took.
func (u *Unit) Cycles() int {
	return u.cycles
}

// Fetched returns the number of chunks fetched in the last run.
func (u *Unit) Fetched() int {
	return len(u.fetched)
}
