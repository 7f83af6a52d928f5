package partition

import (
	"strconv"
	"testing"
)

func TestNextPowerOfTwo(t *testing.T) {
	run := func(input uint64, want uint64) {
		t.Run(strconv.FormatUint(input, 10),
			func(t *testing.T) {
				got := nextPowerOfTwo(input)
				if got != want {
					t.Errorf("%d != %d", got, want)
				}
			},
		)
	}
	run(0, 0)
	run(1, 1)
	run(2, 2)
	run(3, 4)
	run(1000, 1024)
	run(1<<40, 1<<40)
	run(1<<63, 1<<63)
	run(1<<63+1, 0)
}

func TestNearestPowerOfTwo(t *testing.T) {
	run := func(input uint64, want uint64) {
		t.Run(strconv.FormatUint(input, 10),
			func(t *testing.T) {
				got := nearestPowerOfTwo(input)
				if got != want {
					t.Errorf("%d != %d", got, want)
				}
			},
		)
	}
	run(0, 0)
	run(1, 1)
	run(3, 4)
	run(42, 32)
	run(50, 64)
	run(1<<25-10, 1<<25)
	run(1<<25+1, 1<<25)
	run(1<<63+1, 1<<63)
}

func TestBitsOfPowerOfTwo(t *testing.T) {
	run := func(input uint64, want int) {
		t.Run(strconv.FormatUint(input, 10),
			func(t *testing.T) {
				got := bitsOfPowerOfTwo(input)
				if got != want {
					t.Errorf("%d != %d", got, want)
				}
			},
		)
	}
	run(0, 0)
	run(1, 0)
	run(42, 5)
	run(50, 6)
	run(1*1024*1024, 20)
	run(1<<25-10, 25)
	run(1<<25+1, 25)
}
