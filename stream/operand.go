package stream

import (
	"fmt"

	"github.com/sarchlab/packeval/instr"
)

// OperandReader yields successive operands of a fixed bit-width.
type OperandReader interface {
	Next() (uint16, error)
}

func checkDimension(dimension int) error {
	if dimension < instr.MinDimension || dimension > instr.MaxDimension {
		return fmt.Errorf("dimension %d: %w", dimension, instr.ErrOutOfRange)
	}
	return nil
}

// AlignedReader takes floor(16/dimension) operands from the top of each
// chunk and discards the low bits that are left over.
type AlignedReader struct {
	src       ChunkSource
	dimension int
	perChunk  int
	left      int
	word      BitWord
}

// NewAlignedReader creates a chunk-aligned reader.
func NewAlignedReader(src ChunkSource, dimension int) (*AlignedReader, error) {
	if err := checkDimension(dimension); err != nil {
		return nil, err
	}

	return &AlignedReader{
		src:       src,
		dimension: dimension,
		perChunk:  instr.ChunkBits / dimension,
	}, nil
}

// Next returns the next operand, reading a chunk when the current one has
// been used up.
func (r *AlignedReader) Next() (uint16, error) {
	if r.left == 0 {
		chunk, err := r.src.NextChunk()
		if err != nil {
			return 0, err
		}

		r.word.Drop()
		r.word.Load(chunk)
		r.left = r.perChunk
	}

	r.left--

	return r.word.Take(r.dimension), nil
}

// CarryReader treats the chunks as one continuous bit string. An operand
// may start in one chunk and end in the next.
type CarryReader struct {
	src       ChunkSource
	dimension int
	word      BitWord
}

// NewCarryReader creates a bit-exact reader.
func NewCarryReader(src ChunkSource, dimension int) (*CarryReader, error) {
	if err := checkDimension(dimension); err != nil {
		return nil, err
	}

	return &CarryReader{src: src, dimension: dimension}, nil
}

// Next returns the next operand. The pending bits of the previous chunk
// form its high part when they are too few on their own.
func (r *CarryReader) Next() (uint16, error) {
	if r.word.Pending() < r.dimension {
		chunk, err := r.src.NextChunk()
		if err != nil {
			return 0, err
		}

		r.word.Load(chunk)
	}

	return r.word.Take(r.dimension), nil
}

// Pending returns the number of bits carried over to the next operand.
func (r *CarryReader) Pending() int {
	return r.word.Pending()
}

// ReadAll reads n operands.
func ReadAll(r OperandReader, n int) ([]uint16, error) {
	operands := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		v, err := r.Next()
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		operands = append(operands, v)
	}
	return operands, nil
}
