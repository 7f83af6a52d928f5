// Package kinds evaluates intmath operations on values whose integer
// type is only known at run time.
package kinds

import (
	"errors"
	"fmt"
	"strconv"

	"bazil.org/intmath/intmath"
)

var (
	ErrUnknownKind = errors.New("unknown integer kind")
	ErrUnknownOp   = errors.New("unknown operation")
)

type Kind uint8

const (
	Int Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Int:    "int",
	Int8:   "int8",
	Int16:  "int16",
	Int32:  "int32",
	Int64:  "int64",
	Uint:   "uint",
	Uint8:  "uint8",
	Uint16: "uint16",
	Uint32: "uint32",
	Uint64: "uint64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Parse returns the kind named like the Go type, e.g. "uint16".
func Parse(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) Signed() bool {
	return k <= Int64
}

// Bits returns the full width of the kind.
func (k Kind) Bits() int {
	switch k {
	case Int, Uint:
		return strconv.IntSize
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	}
	return 0
}

func (k Kind) NonSignBits() int {
	switch k {
	case Int:
		return intmath.NonSignBits[int]()
	case Int8:
		return intmath.NonSignBits[int8]()
	case Int16:
		return intmath.NonSignBits[int16]()
	case Int32:
		return intmath.NonSignBits[int32]()
	case Int64:
		return intmath.NonSignBits[int64]()
	case Uint:
		return intmath.NonSignBits[uint]()
	case Uint8:
		return intmath.NonSignBits[uint8]()
	case Uint16:
		return intmath.NonSignBits[uint16]()
	case Uint32:
		return intmath.NonSignBits[uint32]()
	case Uint64:
		return intmath.NonSignBits[uint64]()
	}
	return 0
}

// Eval parses s as a value of kind k and applies op to it. Integer
// literals may use Go base prefixes and underscores.
func (k Kind) Eval(op Op, s string) (string, error) {
	switch k {
	case Int:
		return evalSigned[int](k, op, s)
	case Int8:
		return evalSigned[int8](k, op, s)
	case Int16:
		return evalSigned[int16](k, op, s)
	case Int32:
		return evalSigned[int32](k, op, s)
	case Int64:
		return evalSigned[int64](k, op, s)
	case Uint:
		return evalUnsigned[uint](k, op, s)
	case Uint8:
		return evalUnsigned[uint8](k, op, s)
	case Uint16:
		return evalUnsigned[uint16](k, op, s)
	case Uint32:
		return evalUnsigned[uint32](k, op, s)
	case Uint64:
		return evalUnsigned[uint64](k, op, s)
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

func evalSigned[T int | int8 | int16 | int32 | int64](k Kind, op Op, s string) (string, error) {
	n, err := strconv.ParseInt(s, 0, k.Bits())
	if err != nil {
		return "", fmt.Errorf("%v: %w", k, err)
	}
	return apply(op, T(n))
}

func evalUnsigned[T uint | uint8 | uint16 | uint32 | uint64](k Kind, op Op, s string) (string, error) {
	n, err := strconv.ParseUint(s, 0, k.Bits())
	if err != nil {
		return "", fmt.Errorf("%v: %w", k, err)
	}
	return apply(op, T(n))
}

func format[T intmath.Integer](v T) string {
	if ^T(0) < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func apply[T intmath.Integer](op Op, x T) (string, error) {
	switch op {
	case CountLeadingZeros:
		return format(intmath.CountLeadingZeros(x)), nil
	case Log2:
		return format(intmath.Log2(x)), nil
	case Log2RoundUp:
		return format(intmath.Log2RoundUp(x)), nil
	case IsPowerOfTwo:
		return strconv.FormatBool(intmath.IsPowerOfTwo(x)), nil
	case IsOdd:
		return strconv.FormatBool(intmath.IsOdd(x)), nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownOp, op)
}
