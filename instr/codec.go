package instr

import "fmt"

const (
	countBits    = 3
	opBits       = 2
	dimBits      = 4
	wordBits     = 32
	countShift   = wordBits - countBits
	opMask       = 1<<opBits - 1
	dimMask      = 1<<dimBits - 1
	firstOpShift = countShift - opBits
)

// dimShift returns the bit position of the dimension field, which sits right
// after the operator codes and so moves with the operator count.
func dimShift(operatorCount int) uint {
	return uint(countShift - opBits*operatorCount - dimBits)
}

// PaddingMask selects the low bits of a word that follow the dimension field
// of an instruction with operatorCount operators.
func PaddingMask(operatorCount int) uint32 {
	return 1<<dimShift(operatorCount) - 1
}

// Encode packs the instruction into a word laid out, from the most
// significant bit, as 3 bits of count-1, 2 bits per operator, 4 bits of
// dimension-1 and zero padding.
func Encode(in Instruction) uint32 {
	n := in.OperatorCount()

	word := uint32(n-1) << countShift
	for i, op := range in.operators {
		word |= uint32(op) << uint(firstOpShift-opBits*i)
	}
	word |= uint32(in.dimension-1) << dimShift(n)

	return word
}

// EncodeOperators validates the parameters and packs them into a word.
func EncodeOperators(dimension int, operators []Operator) (uint32, error) {
	in, err := New(dimension, operators)
	if err != nil {
		return 0, err
	}

	return Encode(in), nil
}

// Decode unpacks a word. The zero word is rejected rather than read as a
// single addition of 1-bit operands.
func Decode(word uint32) (Instruction, error) {
	if word == 0 {
		return Instruction{}, fmt.Errorf("zero instruction word: %w", ErrOutOfRange)
	}

	n := int(word>>countShift) + 1

	ops := make([]Operator, n)
	for i := range ops {
		ops[i] = Operator(word >> uint(firstOpShift-opBits*i) & opMask)
	}

	dim := int(word>>dimShift(n)&dimMask) + 1

	return Instruction{dimension: dim, operators: ops}, nil
}
