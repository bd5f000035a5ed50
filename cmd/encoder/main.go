// Command encoder packs a textual instruction into its 32-bit word.
//
//	encoder <input file> <output file>
//
// The input holds the operator count, the dimension and the operator tokens,
// for example "2 5 * +". The word is written in decimal; 0 marks a failure.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/packeval/instr"
	"github.com/tebeka/atexit"
)

func encode(r io.Reader, w io.Writer) error {
	in, err := instr.ParseEncoderInput(r)
	if err != nil {
		fmt.Fprintln(w, 0)
		return err
	}

	word := instr.Encode(in)
	slog.Info("Encoded", "Instruction", in.String(), "Word", word)

	_, err = fmt.Fprintln(w, word)
	return err
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: encoder <input file> <output file>")
		atexit.Exit(1)
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open file for reading encode:", err)
		atexit.Exit(1)
	}
	atexit.Register(func() { in.Close() })

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open file for writing encode:", err)
		atexit.Exit(1)
	}
	atexit.Register(func() { out.Close() })

	if err := encode(in, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
