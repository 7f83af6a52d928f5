package config

import (
	"fmt"

	"bazil.org/intmath/partition"
)

// Profile holds planner settings. Unset fields keep the planner
// defaults.
type Profile struct {
	Name         string `hcl:"profile,label"`
	TileMin      uint64 `hcl:"tile_min,optional"`
	TileMax      uint64 `hcl:"tile_max,optional"`
	TileGoal     uint64 `hcl:"tile_goal,optional"`
	MaxRadixBits uint8  `hcl:"max_radix_bits,optional"`
}

func (prof *Profile) validate() error {
	if prof.TileMin != 0 && prof.TileMax != 0 && prof.TileMin > prof.TileMax {
		return fmt.Errorf("tile_min %d is larger than tile_max %d", prof.TileMin, prof.TileMax)
	}
	if prof.MaxRadixBits > 64 {
		return fmt.Errorf("max_radix_bits %d is more than 64", prof.MaxRadixBits)
	}
	return nil
}

func (prof *Profile) Options() []partition.Option {
	return []partition.Option{
		partition.WithTileLimits(prof.TileMin, prof.TileMax),
		partition.WithTileGoal(prof.TileGoal),
		partition.WithMaxRadixBits(prof.MaxRadixBits),
	}
}

func (prof *Profile) Planner() *partition.Planner {
	return partition.New(prof.Options()...)
}
