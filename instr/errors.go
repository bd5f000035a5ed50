package instr

// Error kinds reported by the codec, the operand readers and the
// evaluators. Wrapped errors must be tested with errors.Is.
const (
	ErrMalformedInput = Errno(iota + 1)
	ErrOutOfRange
	ErrStreamExhausted
	ErrUnsupportedDimension
	ErrDivideByZero
	ErrUnknownMode
)

var strError = []string{
	"",
	"malformed input",
	"value out of range",
	"operand stream exhausted",
	"unsupported dimension",
	"division by zero",
	"unknown mode",
}

// Errno describes why an instruction could not be encoded, decoded or
// executed.
type Errno int

func (e Errno) Error() string {
	if e <= 0 || int(e) >= len(strError) {
		return "unknown error"
	}
	return strError[e]
}
