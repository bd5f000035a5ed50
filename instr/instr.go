// Package instr defines the packed arithmetic instruction and its 32-bit
// encoding.
package instr

import (
	"fmt"
	"strings"
)

const (
	MinOperators = 1
	MaxOperators = 8
	MinDimension = 1
	MaxDimension = 16

	// ChunkBits is the width of one unit of the operand stream.
	ChunkBits = 16
)

// Instruction is a decoded expression: a fixed operand width and an ordered
// list of operators applied to OperandCount operands.
type Instruction struct {
	dimension int
	operators []Operator
}

// New validates the operator count and the dimension and returns the
// instruction. The operator slice is copied.
func New(dimension int, operators []Operator) (Instruction, error) {
	if len(operators) < MinOperators || len(operators) > MaxOperators {
		return Instruction{}, fmt.Errorf(
			"operator count %d not in [%d, %d]: %w",
			len(operators), MinOperators, MaxOperators, ErrOutOfRange)
	}

	if dimension < MinDimension || dimension > MaxDimension {
		return Instruction{}, fmt.Errorf(
			"dimension %d not in [%d, %d]: %w",
			dimension, MinDimension, MaxDimension, ErrOutOfRange)
	}

	for _, op := range operators {
		if op > Div {
			return Instruction{}, fmt.Errorf(
				"operator code %d: %w", uint8(op), ErrMalformedInput)
		}
	}

	ops := make([]Operator, len(operators))
	copy(ops, operators)

	return Instruction{dimension: dimension, operators: ops}, nil
}

// OperatorCount returns the number of operators, in [1, 8].
func (in Instruction) OperatorCount() int {
	return len(in.operators)
}

// OperandCount returns the number of operands, one more than the operators.
func (in Instruction) OperandCount() int {
	return len(in.operators) + 1
}

// Dimension returns the bit-width of each operand.
func (in Instruction) Dimension() int {
	return in.dimension
}

// Operator returns the i-th operator.
func (in Instruction) Operator(i int) Operator {
	return in.operators[i]
}

// Operators returns a copy of the operator list.
func (in Instruction) Operators() []Operator {
	ops := make([]Operator, len(in.operators))
	copy(ops, in.operators)
	return ops
}

// ChunkCount returns the number of 16-bit chunks holding the operands.
func (in Instruction) ChunkCount() int {
	return ChunkCount(in.OperatorCount(), in.dimension)
}

// String renders the instruction the way the decoder prints it:
// the operator count, each operator token, then the dimension.
func (in Instruction) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d ", in.OperatorCount())
	for _, op := range in.operators {
		b.WriteString(op.String())
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%d", in.dimension)

	return b.String()
}

// ChunkCount returns ceil((operatorCount+1)*dimension / 16), the number of
// chunks an expression with these parameters occupies.
func ChunkCount(operatorCount, dimension int) int {
	bits := (operatorCount + 1) * dimension
	return (bits + ChunkBits - 1) / ChunkBits
}
