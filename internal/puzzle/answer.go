package puzzle

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Answer is the displayable result of a solved part.
type Answer interface {
	String() string
}

// Solver is one part of a day. It must be deterministic and must not
// perform I/O beyond reading in.
type Solver func(in Input) (Answer, error)

// Number is an unsigned integer answer.
type Number uint64

func (n Number) String() string { return strconv.FormatUint(uint64(n), 10) }

// CheckedSum adds up xs, or returns ok=false as soon as the total overflows T.
func CheckedSum[T constraints.Unsigned](xs []T) (total T, ok bool) {
	for _, x := range xs {
		next := total + x
		if next < total {
			return 0, false
		}
		total = next
	}
	return total, true
}

// CheckedAdd returns a+b, or ok=false if the sum overflows.
func CheckedAdd(a, b uint64) (sum uint64, ok bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// CheckedMul returns a*b, or ok=false if the product overflows.
func CheckedMul(a, b uint64) (product uint64, ok bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
