package instr

import "fmt"

// Operator is one of the four arithmetic operators. Its value is the
// 2-bit code stored in an encoded word.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// String returns the operator token.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return fmt.Sprintf("Operator(%d)", uint8(o))
	}
}

// Name returns the operator mnemonic, as shown in tables.
func (o Operator) Name() string {
	switch o {
	case Add:
		return "ADD"
	case Sub:
		return "SUB"
	case Mul:
		return "MUL"
	case Div:
		return "DIV"
	default:
		return "INVALID"
	}
}

// HighPrecedence reports whether the operator binds before Add and Sub.
func (o Operator) HighPrecedence() bool {
	return o == Mul || o == Div
}

// ParseOperator maps a token from the set {+,-,*,/} to its operator.
func ParseOperator(token rune) (Operator, error) {
	switch token {
	case '+':
		return Add, nil
	case '-':
		return Sub, nil
	case '*':
		return Mul, nil
	case '/':
		return Div, nil
	}

	return 0, fmt.Errorf("operator token %q: %w", token, ErrMalformedInput)
}

// Apply computes lhs op rhs. Division truncates toward zero.
func (o Operator) Apply(lhs, rhs int64) (int64, error) {
	switch o {
	case Add:
		return lhs + rhs, nil
	case Sub:
		return lhs - rhs, nil
	case Mul:
		return lhs * rhs, nil
	case Div:
		if rhs == 0 {
			return 0, fmt.Errorf("%d / 0: %w", lhs, ErrDivideByZero)
		}
		return lhs / rhs, nil
	}

	return 0, fmt.Errorf("operator code %d: %w", uint8(o), ErrMalformedInput)
}
