package verify

import (
	"fmt"

	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

// RunLint performs static checks on an encoded word, the mode it is going to
// run in and the chunks that will be fed to it. Returns the issues found, or
// an empty list.
func RunLint(word uint32, mode config.Mode, chunks []uint16) []Issue {
	var issues []Issue

	in, err := instr.Decode(word)
	if err != nil {
		return append(issues, Issue{
			Type:    IssueStruct,
			Message: fmt.Sprintf("Word cannot be decoded: %v", err),
			OpID:    -1,
			Details: map[string]interface{}{"word": word},
		})
	}

	// STRUCT: padding must be zero, decode ignores it
	if pad := word & instr.PaddingMask(in.OperatorCount()); pad != 0 {
		issues = append(issues, Issue{
			Type:    IssueStruct,
			Message: fmt.Sprintf("Padding bits are not zero: %#x", pad),
			OpID:    -1,
			Details: map[string]interface{}{"word": word, "padding": pad},
		})
	}

	// MODE
	if mode == config.PowerOfTwo && instr.ChunkBits%in.Dimension() != 0 {
		msg := fmt.Sprintf("Dimension %d does not divide %d, %v mode cannot run it",
			in.Dimension(), instr.ChunkBits, mode)
		issues = append(issues, Issue{
			Type:    IssueMode,
			Message: msg,
			OpID:    -1,
			Details: map[string]interface{}{"dimension": in.Dimension()},
		})
	}

	// STREAM
	need := in.ChunkCount()
	switch {
	case len(chunks) < need:
		issues = append(issues, Issue{
			Type:    IssueStream,
			Message: fmt.Sprintf("Stream has %d chunks, %d needed", len(chunks), need),
			OpID:    -1,
			Details: map[string]interface{}{"have": len(chunks), "need": need},
		})
		return issues
	case len(chunks) > need:
		issues = append(issues, Issue{
			Type:    IssueStream,
			Message: fmt.Sprintf("%d trailing chunks are never read", len(chunks)-need),
			OpID:    -1,
			Details: map[string]interface{}{"have": len(chunks), "need": need},
		})
	}

	// ARITH: the divisor of operator i is operand i+1 whatever the precedence
	issues = append(issues, lintDivisors(in, mode, chunks)...)

	return issues
}

func lintDivisors(in instr.Instruction, mode config.Mode, chunks []uint16) []Issue {
	var (
		r   stream.OperandReader
		err error
	)

	src := stream.NewSliceSource(chunks...)
	if mode == config.PowerOfTwo {
		r, err = stream.NewAlignedReader(src, in.Dimension())
	} else {
		r, err = stream.NewCarryReader(src, in.Dimension())
	}
	if err != nil {
		return nil
	}

	operands, err := stream.ReadAll(r, in.OperandCount())
	if err != nil {
		return nil
	}

	var issues []Issue
	for i, op := range in.Operators() {
		if op == instr.Div && operands[i+1] == 0 {
			issues = append(issues, Issue{
				Type:    IssueArith,
				Message: fmt.Sprintf("Operator %d divides by zero", i),
				OpID:    i,
				Details: map[string]interface{}{"operand": i + 1},
			})
		}
	}

	return issues
}
