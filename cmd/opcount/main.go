// Command opcount reads an encoded instruction from stdin and prints how
// many 16-bit chunks its operands occupy.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
	"github.com/tebeka/atexit"
)

func count(r io.Reader, w io.Writer) error {
	word, err := stream.NewTextSource(r).ReadWord()
	if err != nil {
		return fmt.Errorf("failed to read instruction code: %w", err)
	}

	in, err := instr.Decode(word)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, in.ChunkCount())
	return err
}

func main() {
	if err := count(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
