package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/packeval/instr"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// RenderTable lays out an instruction as a table: one row per operand slot,
// with the operator that combines it with the running result.
func RenderTable(in instr.Instruction) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Instruction %#08x", instr.Encode(in)))

	t.AppendHeader(table.Row{"Operand", "Operator", "Code", "Bits"})

	dim := in.Dimension()
	t.AppendRow(table.Row{0, "", "", fmt.Sprintf("%d-%d", 0, dim-1)})
	for i, op := range in.Operators() {
		start := (i + 1) * dim
		t.AppendRow(table.Row{
			i + 1,
			op.Name(),
			fmt.Sprintf("%02b", uint8(op)),
			fmt.Sprintf("%d-%d", start, start+dim-1),
		})
	}

	t.AppendFooter(table.Row{
		"Dimension", dim,
		"Chunks", in.ChunkCount(),
	})

	return t.Render()
}

func logResult(u *Unit) {
	slog.Debug("UnitState",
		"Name", u.Name(),
		"Mode", u.mode,
		"Instruction", u.in.String(),
		"Fetched", len(u.fetched),
		"Cycles", u.cycles,
		"Result", u.result,
		"Err", u.err,
	)
}
