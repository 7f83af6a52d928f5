package pow2

import (
	"flag"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type pow2Command struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *pow2Command) Run() error {
	return cliintmath.EvaluateArgs(c.Flags.Type, kinds.IsPowerOfTwo, c.Arguments.Value)
}

var pow2 = pow2Command{
	Description: "report whether x&(x-1) is zero",
}

func init() {
	pow2.Var((*flagx.Kind)(&pow2.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&pow2)
}
