package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/core"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

var evaluatedModes = []config.Mode{
	config.PowerOfTwo,
	config.General,
	config.Precedence,
}

// ModeOutcome is the result of one evaluator over the report's chunks.
type ModeOutcome struct {
	Mode  config.Mode
	Value int64
	Err   error
}

// VerificationReport collects lint findings for every mode and the outcome of
// every evaluator on the same instruction and chunks.
type VerificationReport struct {
	Word        uint32
	Instruction instr.Instruction
	DecodeErr   error
	Chunks      []uint16
	LintIssues  []Issue
	Outcomes    []ModeOutcome
	Mismatches  []string
}

// GenerateReport lints the word, runs all evaluators, and cross-checks their
// results.
func GenerateReport(word uint32, chunks []uint16) *VerificationReport {
	report := &VerificationReport{
		Word:   word,
		Chunks: chunks,
	}

	report.Instruction, report.DecodeErr = instr.Decode(word)

	// General mode covers every dimension; the pow2 restriction is only
	// reported in the pow2 run.
	report.LintIssues = RunLint(word, config.General, chunks)
	if report.DecodeErr != nil {
		return report
	}

	for _, issue := range RunLint(word, config.PowerOfTwo, chunks) {
		if issue.Type == IssueMode {
			report.LintIssues = append(report.LintIssues, issue)
		}
	}

	for _, mode := range evaluatedModes {
		report.Outcomes = append(report.Outcomes, evaluate(report.Instruction, mode, chunks))
	}

	report.Mismatches = crossCheck(report.Instruction, report.Outcomes)

	return report
}

func evaluate(in instr.Instruction, mode config.Mode, chunks []uint16) ModeOutcome {
	out := ModeOutcome{Mode: mode}

	eval, err := core.ForMode(mode)
	if err != nil {
		out.Err = err
		return out
	}

	out.Value, out.Err = eval.Evaluate(in, stream.NewSliceSource(chunks...))

	return out
}

func crossCheck(in instr.Instruction, outcomes []ModeOutcome) []string {
	byMode := make(map[config.Mode]ModeOutcome, len(outcomes))
	for _, o := range outcomes {
		byMode[o.Mode] = o
	}

	var mismatches []string

	pow2, general := byMode[config.PowerOfTwo], byMode[config.General]
	if instr.ChunkBits%in.Dimension() == 0 && !sameOutcome(pow2, general) {
		mismatches = append(mismatches, fmt.Sprintf(
			"pow2 and general disagree at dimension %d: %s vs %s",
			in.Dimension(), outcomeText(pow2), outcomeText(general)))
	}

	prec := byMode[config.Precedence]
	if !hasHighPrecedence(in) && !sameOutcome(prec, general) {
		mismatches = append(mismatches, fmt.Sprintf(
			"precedence and general disagree without Mul or Div: %s vs %s",
			outcomeText(prec), outcomeText(general)))
	}

	return mismatches
}

func hasHighPrecedence(in instr.Instruction) bool {
	for _, op := range in.Operators() {
		if op.HighPrecedence() {
			return true
		}
	}

	return false
}

func sameOutcome(a, b ModeOutcome) bool {
	if a.Err != nil || b.Err != nil {
		return errKind(a.Err) == errKind(b.Err)
	}

	return a.Value == b.Value
}

func errKind(err error) instr.Errno {
	var kind instr.Errno
	if err != nil && !errors.As(err, &kind) {
		return -1
	}

	return kind
}

func outcomeText(o ModeOutcome) string {
	if o.Err != nil {
		return "error: " + o.Err.Error()
	}

	return fmt.Sprintf("%d", o.Value)
}

// OK reports whether the word decoded, no lint issue was found, and the
// evaluators agree.
func (r *VerificationReport) OK() bool {
	return r.DecodeErr == nil && len(r.LintIssues) == 0 && len(r.Mismatches) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "INSTRUCTION %#08x VERIFICATION REPORT\n", r.Word)
	fmt.Fprintln(w, separator)

	if r.DecodeErr == nil {
		fmt.Fprintf(w, "\n✓ Decoded: %s\n", r.Instruction)
		fmt.Fprintf(w, "  %d chunks supplied, %d needed\n",
			len(r.Chunks), r.Instruction.ChunkCount())
	} else {
		fmt.Fprintf(w, "\n⚠ Decode error: %v\n", r.DecodeErr)
	}

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues:\n", len(r.LintIssues))
		for _, issue := range r.LintIssues {
			fmt.Fprintf(w, "  [%s op=%d] %s\n", issue.Type, issue.OpID, issue.Message)
		}
	}

	// STAGE 2: CROSS-CHECK
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: EVALUATOR CROSS-CHECK")
	fmt.Fprintln(w, separator)

	for _, o := range r.Outcomes {
		fmt.Fprintf(w, "  %-10s %s\n", o.Mode, outcomeText(o))
	}

	if len(r.Mismatches) == 0 {
		fmt.Fprintln(w, "✓ Evaluators agree")
	} else {
		for _, m := range r.Mismatches {
			fmt.Fprintf(w, "⚠ %s\n", m)
		}
	}

	// SUMMARY
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "Lint Result: %d issues detected\n", len(r.LintIssues))
	fmt.Fprintf(w, "Cross-check Result: %d mismatches\n", len(r.Mismatches))
	if r.OK() {
		fmt.Fprintln(w, "✓ INSTRUCTION PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "⚠ INSTRUCTION HAS ISSUES")
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
