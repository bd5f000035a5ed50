// Command verify-word lints an encoded instruction and cross-checks every
// evaluator on its operand chunks.
//
//	verify-word <input file> [report file]
//
// The input uses the decoder format: the word followed by the chunks, all in
// decimal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
	"github.com/sarchlab/packeval/verify"
	"github.com/tebeka/atexit"
)

func readInput(path string) (uint32, []uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	src := stream.NewTextSource(f)

	word, err := src.ReadWord()
	if err != nil {
		return 0, nil, fmt.Errorf("reading instruction: %w", err)
	}

	var chunks []uint16
	for {
		chunk, err := src.NextChunk()
		if errors.Is(err, instr.ErrStreamExhausted) {
			return word, chunks, nil
		}
		if err != nil {
			return 0, nil, fmt.Errorf("reading chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, chunk)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: verify-word <input file> [report file]")
		atexit.Exit(2)
	}

	word, chunks, err := readInput(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	report := verify.GenerateReport(word, chunks)
	report.WriteReport(os.Stdout)

	if len(os.Args) > 2 {
		if err := report.SaveReportToFile(os.Args[2]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", os.Args[2])
	}

	if !report.OK() {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
