package odd

import (
	"flag"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type oddCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *oddCommand) Run() error {
	return cliintmath.EvaluateArgs(c.Flags.Type, kinds.IsOdd, c.Arguments.Value)
}

var odd = oddCommand{
	Description: "report whether the lowest bit is set",
}

func init() {
	odd.Var((*flagx.Kind)(&odd.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&odd)
}
