package clz

import (
	"flag"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type clzCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *clzCommand) Run() error {
	return cliintmath.EvaluateArgs(c.Flags.Type, kinds.CountLeadingZeros, c.Arguments.Value)
}

var clz = clzCommand{
	Description: "count leading zeros among the non-sign bits",
}

func init() {
	clz.Var((*flagx.Kind)(&clz.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&clz)
}
