// Package config provides the mode selector and the default settings of the
// evaluation unit.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/packeval/instr"
)

// DefaultFreq is the clock of the evaluation unit when none is given.
const DefaultFreq = 1 * sim.GHz

// Mode selects what is done with a decoded instruction.
type Mode int

const (
	// Render prints the decoded instruction.
	Render Mode = iota
	// PowerOfTwo folds left to right; the dimension must divide 16.
	PowerOfTwo
	// General folds left to right for any dimension.
	General
	// Precedence applies Mul and Div before Add and Sub.
	Precedence
)

var modeNames = map[Mode]string{
	Render:     "render",
	PowerOfTwo: "pow2",
	General:    "general",
	Precedence: "precedence",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Evaluates reports whether the mode computes a result.
func (m Mode) Evaluates() bool {
	return m == PowerOfTwo || m == General || m == Precedence
}

// ParseMode accepts the numeric selector 0-3 or a mode name.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		m := Mode(n)
		if _, ok := modeNames[m]; ok {
			return m, nil
		}
		return 0, fmt.Errorf("mode %d: %w", n, instr.ErrUnknownMode)
	}

	for m, name := range modeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("mode %q: %w", s, instr.ErrUnknownMode)
}
