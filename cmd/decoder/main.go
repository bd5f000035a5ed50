// Command decoder reads an encoded instruction followed by its operand chunks
// and either prints the instruction or evaluates it.
//
//	decoder <input file> <output file> <mode> [table]
//
// Modes: 0 render, 1 power-of-two dimension without precedence, 2 any
// dimension without precedence, 3 any dimension with precedence. With the
// table argument the render mode prints a field table to stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/packeval/api"
	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/core"
	"github.com/sarchlab/packeval/stream"
	"github.com/tebeka/atexit"
)

const noAnswer = "No answer calculated"

func run(r io.Reader, w, diag io.Writer, mode config.Mode, table bool) error {
	src := stream.NewTextSource(r)

	word, err := src.ReadWord()
	if err != nil {
		return fmt.Errorf("reading instruction: %w", err)
	}

	driver := api.DriverBuilder{}.
		WithFreq(config.DefaultFreq).
		WithMode(mode).
		Build("Decoder")

	if err := driver.MapInstruction(word); err != nil {
		return fmt.Errorf("decoding %d: %w", word, err)
	}
	driver.FeedIn(src)

	res, err := driver.Run()
	if err != nil {
		return err
	}

	if table && mode == config.Render {
		fmt.Fprintln(diag, core.RenderTable(res.Instruction))
	}

	slog.Info("Decoded",
		"Mode", mode.String(), "Word", word, "Output", res.Text, "Cycles", res.Cycles)

	_, err = fmt.Fprintln(w, res.Text)
	return err
}

func main() {
	setupLogging()

	if len(os.Args) != 4 && len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: decoder <input file> <output file> <mode> [table]")
		atexit.Exit(1)
	}

	in, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open file for reading decode:", err)
		atexit.Exit(1)
	}
	atexit.Register(func() { in.Close() })

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open file for writing decode:", err)
		atexit.Exit(1)
	}
	atexit.Register(func() { out.Close() })

	table := len(os.Args) == 5 && os.Args[4] == "table"

	mode, err := config.ParseMode(os.Args[3])
	if err == nil {
		err = run(in, out, os.Stderr, mode, table)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(out, noAnswer)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func setupLogging() {
	level := slog.LevelWarn
	if os.Getenv("PACKEVAL_TRACE") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
