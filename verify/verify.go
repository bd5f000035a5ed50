// Package verify provides debugging checks for an encoded instruction and its
// operand stream.
//
// Two complementary stages are implemented:
//
// 1. Static Lint (lint.go): layout and stream checks that need no evaluation
//   - STRUCT: zero word, non-zero padding bits
//   - MODE: power-of-two mode with a dimension that does not divide 16
//   - STREAM: missing or trailing chunks
//   - ARITH: zero divisors found in the operand stream
//
// 2. Cross-check (report.go): runs every evaluator over the same chunks and
// checks the properties that must hold between them:
//   - the aligned and carry evaluators agree when the dimension divides 16
//   - the precedence evaluator agrees with left-to-right folding when no
//     Mul or Div is present
//
// # Usage Example
//
//	issues := verify.RunLint(word, config.PowerOfTwo, chunks)
//	for _, issue := range issues {
//	    log.Printf("[%s] op=%d: %s", issue.Type, issue.OpID, issue.Message)
//	}
//
//	report := verify.GenerateReport(word, chunks)
//	report.WriteReport(os.Stdout)
package verify

// IssueType classifies lint findings.
type IssueType string

const (
	IssueStruct IssueType = "STRUCT"
	IssueMode   IssueType = "MODE"
	IssueStream IssueType = "STREAM"
	IssueArith  IssueType = "ARITH"
)

// Issue is one lint finding.
type Issue struct {
	Type    IssueType
	Message string
	OpID    int // operator index, -1 when the issue is not tied to one
	Details map[string]interface{}
}
