package partition

type option func(*config)

// Option changes a Planner setting, see New.
type Option option

// WithTileLimits sets the minimum and maximum tile size.
//
// Zero will leave the previous value in effect.
//
// An invalid combination (min > max, including when one is left to
// zero and uses the previous value) will set both values to max.
func WithTileLimits(min, max uint64) Option {
	fn := func(cfg *config) {
		if min != 0 {
			cfg.tileMin = min
		}
		if max != 0 {
			cfg.tileMax = max
		}
		if cfg.tileMin > cfg.tileMax {
			cfg.tileMin = cfg.tileMax
		}
	}
	return fn
}

// WithTileGoal sets the preferred tile size. It is rounded to the
// nearest power of two.
//
// Zero will leave the previous value in effect.
func WithTileGoal(size uint64) Option {
	fn := func(cfg *config) {
		if size != 0 {
			cfg.tileGoalBits = bitsOfPowerOfTwo(size)
		}
	}
	return fn
}

// WithMaxRadixBits limits how many bits may be spent on tile
// indexes. Tiles grow past the goal to stay within the limit.
//
// Zero will leave the previous value in effect.
func WithMaxRadixBits(n uint8) Option {
	fn := func(cfg *config) {
		if n != 0 {
			cfg.maxRadixBits = int(n)
		}
	}
	return fn
}
