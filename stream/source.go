// Package stream turns a sequence of 16-bit chunks into fixed-width
// operand values.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/sarchlab/packeval/instr"
)

// ChunkSource supplies the 16-bit chunks of an operand stream in order.
// NextChunk returns instr.ErrStreamExhausted once no chunk is left and
// instr.ErrMalformedInput when the next chunk cannot be parsed.
type ChunkSource interface {
	NextChunk() (uint16, error)
}

// SliceSource serves chunks from memory.
type SliceSource struct {
	chunks []uint16
	pos    int
}

// NewSliceSource creates a source over the given chunks.
func NewSliceSource(chunks ...uint16) *SliceSource {
	return &SliceSource{chunks: chunks}
}

// NextChunk returns the next chunk.
func (s *SliceSource) NextChunk() (uint16, error) {
	if s.pos >= len(s.chunks) {
		return 0, fmt.Errorf("chunk %d: %w", s.pos, instr.ErrStreamExhausted)
	}

	c := s.chunks[s.pos]
	s.pos++

	return c, nil
}

// Remaining returns how many chunks have not been read.
func (s *SliceSource) Remaining() int {
	return len(s.chunks) - s.pos
}

// FuncSource adapts a generator function. The generator never runs out.
type FuncSource func() uint16

// NextChunk calls the generator.
func (f FuncSource) NextChunk() (uint16, error) {
	return f(), nil
}

// TextSource reads whitespace separated decimal values.
type TextSource struct {
	scanner *bufio.Scanner
	tokens  int
}

// NewTextSource creates a source reading from r.
func NewTextSource(r io.Reader) *TextSource {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	return &TextSource{scanner: s}
}

func (t *TextSource) next(bitSize int) (uint64, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("token %d: %w", t.tokens, instr.ErrStreamExhausted)
	}

	tok := t.scanner.Text()
	v, err := strconv.ParseUint(tok, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("token %d %q: %w", t.tokens, tok, instr.ErrMalformedInput)
	}

	t.tokens++

	return v, nil
}

// ReadWord reads one 32-bit value, such as an encoded instruction that
// precedes the chunks.
func (t *TextSource) ReadWord() (uint32, error) {
	v, err := t.next(32)
	return uint32(v), err
}

// NextChunk reads one 16-bit value.
func (t *TextSource) NextChunk() (uint16, error) {
	v, err := t.next(16)
	return uint16(v), err
}

// CountingSource counts the chunks successfully read from the wrapped
// source.
type CountingSource struct {
	ChunkSource
	reads int
}

// NewCountingSource wraps src.
func NewCountingSource(src ChunkSource) *CountingSource {
	return &CountingSource{ChunkSource: src}
}

// NextChunk forwards to the wrapped source.
func (c *CountingSource) NextChunk() (uint16, error) {
	v, err := c.ChunkSource.NextChunk()
	if err == nil {
		c.reads++
	}
	return v, err
}

// Reads returns the number of chunks read so far.
func (c *CountingSource) Reads() int {
	return c.reads
}
