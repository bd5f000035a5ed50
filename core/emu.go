package core

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

// Evaluator executes a decoded instruction over a packed operand stream.
type Evaluator interface {
	Evaluate(in instr.Instruction, src stream.ChunkSource) (int64, error)
}

// Validator is implemented by evaluators that can reject an instruction
// before any chunk is read.
type Validator interface {
	Validate(in instr.Instruction) error
}

// PowerOfTwoNoPrecedence folds operands left to right, ignoring operator
// precedence. Operands never straddle chunks, so the dimension must divide
// 16.
type PowerOfTwoNoPrecedence struct{}

// Validate rejects dimensions that do not divide 16.
func (PowerOfTwoNoPrecedence) Validate(in instr.Instruction) error {
	if instr.ChunkBits%in.Dimension() != 0 {
		return fmt.Errorf("dimension %d does not divide %d: %w",
			in.Dimension(), instr.ChunkBits, instr.ErrUnsupportedDimension)
	}
	return nil
}

// Evaluate runs the instruction.
func (e PowerOfTwoNoPrecedence) Evaluate(
	in instr.Instruction,
	src stream.ChunkSource,
) (int64, error) {
	if err := e.Validate(in); err != nil {
		return 0, err
	}

	r, err := stream.NewAlignedReader(src, in.Dimension())
	if err != nil {
		return 0, err
	}

	return fold(in, r)
}

// GeneralNoPrecedence folds operands left to right, ignoring operator
// precedence, for any dimension.
type GeneralNoPrecedence struct{}

// Evaluate runs the instruction.
func (GeneralNoPrecedence) Evaluate(
	in instr.Instruction,
	src stream.ChunkSource,
) (int64, error) {
	r, err := stream.NewCarryReader(src, in.Dimension())
	if err != nil {
		return 0, err
	}

	return fold(in, r)
}

// GeneralWithPrecedence applies Mul and Div before Add and Sub, left to right
// within each tier.
type GeneralWithPrecedence struct{}

// Evaluate runs the instruction.
func (GeneralWithPrecedence) Evaluate(
	in instr.Instruction,
	src stream.ChunkSource,
) (int64, error) {
	r, err := stream.NewCarryReader(src, in.Dimension())
	if err != nil {
		return 0, err
	}

	raw, err := stream.ReadAll(r, in.OperandCount())
	if err != nil {
		return 0, err
	}

	operands := make([]int64, len(raw))
	for i, v := range raw {
		operands[i] = int64(v)
	}

	vals, ops, err := reduceHighPrecedence(operands, in.Operators())
	if err != nil {
		return 0, err
	}

	result := vals[0]
	for i, op := range ops {
		result, err = op.Apply(result, vals[i+1])
		if err != nil {
			return 0, err
		}
	}

	return result, nil
}

// reduceHighPrecedence collapses every Mul and Div into its left operand and
// returns the remaining operands with the Add and Sub operators between
// them. Consecutive Mul and Div collapse left to right.
func reduceHighPrecedence(
	operands []int64,
	operators []instr.Operator,
) ([]int64, []instr.Operator, error) {
	vals := make([]int64, 1, len(operands))
	vals[0] = operands[0]
	ops := make([]instr.Operator, 0, len(operators))

	for i, op := range operators {
		rhs := operands[i+1]

		if !op.HighPrecedence() {
			vals = append(vals, rhs)
			ops = append(ops, op)
			continue
		}

		last := len(vals) - 1
		v, err := op.Apply(vals[last], rhs)
		if err != nil {
			return nil, nil, fmt.Errorf("operator %d: %w", i, err)
		}

		slog.Debug("Reduce",
			"Op", op.Name(), "Lhs", vals[last], "Rhs", rhs, "Result", v)

		vals[last] = v
	}

	return vals, ops, nil
}

func fold(in instr.Instruction, r stream.OperandReader) (int64, error) {
	first, err := r.Next()
	if err != nil {
		return 0, fmt.Errorf("operand 0: %w", err)
	}

	result := int64(first)

	for i := 0; i < in.OperatorCount(); i++ {
		v, err := r.Next()
		if err != nil {
			return 0, fmt.Errorf("operand %d: %w", i+1, err)
		}

		result, err = in.Operator(i).Apply(result, int64(v))
		if err != nil {
			return 0, fmt.Errorf("operator %d: %w", i, err)
		}
	}

	return result, nil
}

var evaluators = map[config.Mode]Evaluator{
	config.PowerOfTwo: PowerOfTwoNoPrecedence{},
	config.General:    GeneralNoPrecedence{},
	config.Precedence: GeneralWithPrecedence{},
}

// ForMode returns the evaluator for an evaluating mode.
func ForMode(mode config.Mode) (Evaluator, error) {
	e, ok := evaluators[mode]
	if !ok {
		return nil, fmt.Errorf("no evaluator for mode %v: %w", mode, instr.ErrUnknownMode)
	}

	return e, nil
}
