package instr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// ParseEncoderInput reads the textual instruction form
//
//	<operator count> <dimension> <op> <op> ...
//
// where each op is one of + - * /. Operator tokens may be packed together
// without separating whitespace.
func ParseEncoderInput(r io.Reader) (Instruction, error) {
	br := bufio.NewReader(r)

	count, err := readUnsigned(br)
	if err != nil {
		return Instruction{}, fmt.Errorf("operator count: %w", err)
	}

	dim, err := readUnsigned(br)
	if err != nil {
		return Instruction{}, fmt.Errorf("dimension: %w", err)
	}

	if count < MinOperators || count > MaxOperators {
		return Instruction{}, fmt.Errorf(
			"operator count %d not in [%d, %d]: %w",
			count, MinOperators, MaxOperators, ErrOutOfRange)
	}

	ops := make([]Operator, 0, count)
	for i := 0; i < count; i++ {
		tok, err := readToken(br)
		if err != nil {
			return Instruction{}, fmt.Errorf("operator %d: %w", i, err)
		}

		op, err := ParseOperator(tok)
		if err != nil {
			return Instruction{}, fmt.Errorf("operator %d: %w", i, err)
		}

		ops = append(ops, op)
	}

	return New(dim, ops)
}

func skipSpace(br *bufio.Reader) error {
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return eofAsMalformed(err)
		}

		if !unicode.IsSpace(r) {
			return br.UnreadRune()
		}
	}
}

func readToken(br *bufio.Reader) (rune, error) {
	if err := skipSpace(br); err != nil {
		return 0, err
	}

	r, _, err := br.ReadRune()
	if err != nil {
		return 0, eofAsMalformed(err)
	}

	return r, nil
}

func readUnsigned(br *bufio.Reader) (int, error) {
	if err := skipSpace(br); err != nil {
		return 0, err
	}

	var digits []rune
	for {
		r, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}

		if r < '0' || r > '9' {
			if err := br.UnreadRune(); err != nil {
				return 0, err
			}
			break
		}

		digits = append(digits, r)
	}

	if len(digits) == 0 {
		return 0, fmt.Errorf("expected a number: %w", ErrMalformedInput)
	}

	v, err := strconv.ParseUint(string(digits), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", string(digits), ErrOutOfRange)
	}

	return int(v), nil
}

func eofAsMalformed(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected end of input: %w", ErrMalformedInput)
	}
	return err
}
