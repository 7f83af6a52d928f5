package kinds

import (
	"fmt"
	"strconv"
)

type Op uint8

const (
	CountLeadingZeros Op = iota
	Log2
	Log2RoundUp
	IsPowerOfTwo
	IsOdd
)

// Ops lists every operation, in display order.
var Ops = []Op{CountLeadingZeros, Log2, Log2RoundUp, IsPowerOfTwo, IsOdd}

var opNames = [...]string{
	CountLeadingZeros: "clz",
	Log2:              "log2",
	Log2RoundUp:       "log2ri",
	IsPowerOfTwo:      "pow2",
	IsOdd:             "odd",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return Op(op), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}
