package log2

import (
	"flag"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type log2Command struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *log2Command) Run() error {
	return cliintmath.EvaluateArgs(c.Flags.Type, kinds.Log2, c.Arguments.Value)
}

var log2 = log2Command{
	Description: "floor of base 2 logarithm",
}

func init() {
	log2.Var((*flagx.Kind)(&log2.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&log2)
}
