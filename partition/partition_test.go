package partition_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"bazil.org/intmath/partition"
	"github.com/google/go-cmp/cmp"
)

func TestPlanDefaults(t *testing.T) {
	p := partition.New()
	run := func(count uint64, want partition.Plan) {
		t.Run(strconv.FormatUint(count, 10), func(t *testing.T) {
			got, err := p.Plan(count)
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("plan mismatch (-want +got):\n%s", diff)
			}
		})
	}
	run(0, partition.Plan{Count: 0, TileBits: 12, TileSize: 4096})
	run(1, partition.Plan{Count: 1, TileBits: 12, TileSize: 4096, Tiles: 1, Padded: 4096})
	run(4096, partition.Plan{Count: 4096, TileBits: 12, TileSize: 4096, Tiles: 1, Padded: 4096})
	run(4097, partition.Plan{Count: 4097, TileBits: 12, TileSize: 4096, Tiles: 2, RadixBits: 1, Padded: 8192})
	run(5*4096, partition.Plan{Count: 5 * 4096, TileBits: 12, TileSize: 4096, Tiles: 5, RadixBits: 3, Padded: 5 * 4096})
	run(1<<28, partition.Plan{Count: 1 << 28, TileBits: 12, TileSize: 4096, Tiles: 1 << 16, RadixBits: 16, Padded: 1 << 28})
	// tiles grow to stay within 16 radix bits
	run(1<<28+1, partition.Plan{Count: 1<<28 + 1, TileBits: 13, TileSize: 8192, Tiles: 1<<15 + 1, RadixBits: 16, Padded: (1<<15 + 1) << 13})
}

func TestPlanTooManyTiles(t *testing.T) {
	p := partition.New(partition.WithTileLimits(0, 1024), partition.WithMaxRadixBits(4))
	_, err := p.Plan(1024*16 + 1)
	if !errors.Is(err, partition.ErrTooManyTiles) {
		t.Fatalf("expected ErrTooManyTiles: %v", err)
	}
	plan, err := p.Plan(1024 * 16)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if g, e := plan.RadixBits, 4; g != e {
		t.Errorf("bad radix bits: %d != %d", g, e)
	}
}

func TestPlanPaddingOverflow(t *testing.T) {
	p := partition.New(partition.WithMaxRadixBits(64))
	_, err := p.Plan(math.MaxUint64)
	if !errors.Is(err, partition.ErrTooManyTiles) {
		t.Fatalf("expected ErrTooManyTiles: %v", err)
	}
	count := uint64(math.MaxUint64 - 4095)
	plan, err := p.Plan(count)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Padded < plan.Count {
		t.Errorf("padded %d is less than count %d", plan.Padded, plan.Count)
	}
}

func TestTileLimits(t *testing.T) {
	run := func(name string, opts []partition.Option, wantMin, wantMax uint64) {
		t.Run(name, func(t *testing.T) {
			min, max := partition.New(opts...).TileRange()
			if g, e := min, wantMin; g != e {
				t.Errorf("bad min: %d != %d", g, e)
			}
			if g, e := max, wantMax; g != e {
				t.Errorf("bad max: %d != %d", g, e)
			}
		})
	}
	run("defaults", nil, 256, 1<<20)
	run("rounding", []partition.Option{partition.WithTileLimits(300, 5000)}, 512, 4096)
	run("min above max", []partition.Option{partition.WithTileLimits(1<<21, 0)}, 1<<20, 1<<20)
	run("no power between", []partition.Option{partition.WithTileLimits(300, 400)}, 256, 256)
	run("zero keeps", []partition.Option{partition.WithTileLimits(64, 128), partition.WithTileLimits(0, 0)}, 64, 128)
}

func TestTileGoal(t *testing.T) {
	run := func(goal uint64, wantBits int) {
		t.Run(strconv.FormatUint(goal, 10), func(t *testing.T) {
			p := partition.New(partition.WithTileGoal(goal))
			plan, err := p.Plan(1)
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if g, e := plan.TileBits, wantBits; g != e {
				t.Errorf("bad tile bits: %d != %d", g, e)
			}
		})
	}
	run(0, 12)
	run(1000, 10)
	run(1500, 10)
	run(1600, 11)
	// clamped to limits
	run(1, 8)
	run(1<<30, 20)
}
