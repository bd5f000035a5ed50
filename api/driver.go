// Package api defines the driver that runs a packed instruction in one of the
// evaluation modes.
package api

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/core"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

// Driver provides the interface to run an encoded instruction.
type Driver interface {
	// MapInstruction decodes the word and makes it the instruction to run.
	MapInstruction(word uint32) error

	// FeedIn provides the chunks of the operand stream.
	FeedIn(src stream.ChunkSource)

	// Run executes the mapped instruction in the driver's mode.
	Run() (Result, error)
}

// Result is the outcome of one run.
type Result struct {
	Mode        config.Mode
	Instruction instr.Instruction

	// Value is the evaluated result. It is zero in the render mode.
	Value int64

	// Text is what the decoder prints: the rendered instruction or the
	// value in decimal.
	Text string

	Cycles int
}

type driverImpl struct {
	engine sim.Engine
	mode   config.Mode
	unit   *core.Unit

	in     instr.Instruction
	mapped bool
	src    stream.ChunkSource
}

// MapInstruction decodes and maps an instruction.
func (d *driverImpl) MapInstruction(word uint32) error {
	in, err := instr.Decode(word)
	if err != nil {
		d.mapped = false
		return err
	}

	d.in = in
	d.mapped = true

	return nil
}

// FeedIn sets the operand source.
func (d *driverImpl) FeedIn(src stream.ChunkSource) {
	d.src = src
}

// Run executes the mapped instruction.
func (d *driverImpl) Run() (Result, error) {
	if !d.mapped {
		return Result{}, core.ErrNotMapped
	}

	res := Result{Mode: d.mode, Instruction: d.in}

	if d.mode == config.Render {
		res.Text = d.in.String()
		return res, nil
	}

	if d.src == nil {
		return Result{}, fmt.Errorf("no operand source: %w", core.ErrNotMapped)
	}

	d.unit.MapInstruction(d.in)
	d.unit.FeedIn(d.src)
	d.unit.Start()
	d.engine.Run()

	v, err := d.unit.Result()
	if err != nil {
		return Result{}, err
	}

	res.Value = v
	res.Text = strconv.FormatInt(v, 10)
	res.Cycles = d.unit.Cycles()

	return res, nil
}
