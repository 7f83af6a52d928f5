// Package partition splits a sequence into power-of-two sized tiles.
//
// A Planner picks the tile size closest to its goal that keeps the
// number of tiles addressable with a bounded number of radix bits.
package partition

import (
	"errors"
	"fmt"
	"math"

	"bazil.org/intmath/intmath"
)

// ErrTooManyTiles is returned when even the largest allowed tile
// leaves more tiles than the radix bits can address, or when the padded
// length does not fit in 64 bits.
var ErrTooManyTiles = errors.New("too many tiles")

// Defaults used by New for anything not set through options.
const (
	DefaultTileMin      = 256
	DefaultTileMax      = 1 << 20
	DefaultTileGoal     = 1 << 12
	DefaultMaxRadixBits = 16
)

type config struct {
	tileMin      uint64
	tileMax      uint64
	tileGoalBits int
	maxRadixBits int
}

// Plan describes how Count elements are tiled.
type Plan struct {
	Count    uint64
	TileBits int
	TileSize uint64
	Tiles    uint64
	// RadixBits is the number of bits needed to address every tile.
	RadixBits int
	// Padded is Count rounded up to a whole number of tiles.
	Padded uint64
}

// Planner chooses tilings. It is safe for concurrent use.
type Planner struct {
	// tile sizes are 1<<bits for bits in [minBits, maxBits]
	minBits  int
	maxBits  int
	goalBits int
	maxRadix int
}

// New returns a Planner using the defaults, changed by opts in order.
func New(opts ...Option) *Planner {
	cfg := config{
		tileMin:      DefaultTileMin,
		tileMax:      DefaultTileMax,
		tileGoalBits: bitsOfPowerOfTwo(DefaultTileGoal),
		maxRadixBits: DefaultMaxRadixBits,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner{
		minBits:  int(intmath.Log2RoundUp(cfg.tileMin)),
		maxBits:  int(intmath.Log2(cfg.tileMax)),
		goalBits: cfg.tileGoalBits,
		maxRadix: cfg.maxRadixBits,
	}
	if p.minBits > p.maxBits {
		// no power of two between the limits; max wins
		p.minBits = p.maxBits
	}
	return p
}

// TileRange reports the smallest and largest tile size the planner
// will use.
func (p *Planner) TileRange() (min, max uint64) {
	return 1 << p.minBits, 1 << p.maxBits
}

func (p *Planner) clamp(bits int) int {
	if bits < p.minBits {
		return p.minBits
	}
	if bits > p.maxBits {
		return p.maxBits
	}
	return bits
}

func tileCount(count uint64, bits int) uint64 {
	n := count >> bits
	if count&(1<<bits-1) != 0 {
		n++
	}
	return n
}

func radixBits(tiles uint64) int {
	if tiles <= 1 {
		return 0
	}
	return int(intmath.Log2RoundUp(tiles))
}

// Plan tiles count elements.
func (p *Planner) Plan(count uint64) (Plan, error) {
	bits := p.clamp(p.goalBits)
	for {
		tiles := tileCount(count, bits)
		radix := radixBits(tiles)
		if radix <= p.maxRadix {
			if tiles > math.MaxUint64>>bits {
				return Plan{}, fmt.Errorf("%w: %d elements padded to tiles of %d overflow 64 bits",
					ErrTooManyTiles, count, uint64(1)<<bits)
			}
			plan := Plan{
				Count:     count,
				TileBits:  bits,
				TileSize:  1 << bits,
				Tiles:     tiles,
				RadixBits: radix,
				Padded:    tiles << bits,
			}
			return plan, nil
		}
		if bits >= p.maxBits {
			return Plan{}, fmt.Errorf("%w: %d elements in tiles of %d need %d radix bits, limit is %d",
				ErrTooManyTiles, count, uint64(1)<<bits, radix, p.maxRadix)
		}
		bits++
	}
}
