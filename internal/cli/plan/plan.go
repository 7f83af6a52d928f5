package plan

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/multierr"
	"bazil.org/intmath/partition"
	"github.com/tv42/cliutil/subcommands"
)

type planCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Profile      string
		TileGoal     uint64
		MaxRadixBits uint8
	}
	Arguments struct {
		Count []string
	}
}

func (c *planCommand) Run() error {
	planner, err := cliintmath.IntMath.Planner(c.Flags.Profile,
		partition.WithTileGoal(c.Flags.TileGoal),
		partition.WithMaxRadixBits(c.Flags.MaxRadixBits),
	)
	if err != nil {
		return err
	}

	counts, err := cliintmath.Values(c.Arguments.Count)
	if err != nil {
		return err
	}
	var plans []partition.Plan
	var errs []error
	for _, s := range counts {
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("bad count: %w", err))
			continue
		}
		p, err := planner.Plan(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plans = append(plans, p)
	}
	cliintmath.WritePlans(os.Stdout, plans)
	return multierr.Combine(errs)
}

var plan = planCommand{
	Description: "tile element counts into power-of-two partitions",
}

func init() {
	plan.StringVar(&plan.Flags.Profile, "profile", "", "planner profile from config")
	plan.Var((*flagx.Uint64)(&plan.Flags.TileGoal), "tile-goal", "preferred tile size, overrides profile")
	plan.Var((*flagx.Uint8)(&plan.Flags.MaxRadixBits), "max-radix-bits", "limit on tile index bits, overrides profile")
	subcommands.Register(&plan)
}
