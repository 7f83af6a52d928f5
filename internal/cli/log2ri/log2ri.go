package log2ri

import (
	"flag"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type log2riCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *log2riCommand) Run() error {
	return cliintmath.EvaluateArgs(c.Flags.Type, kinds.Log2RoundUp, c.Arguments.Value)
}

var log2ri = log2riCommand{
	Description: "base 2 logarithm rounded up",
}

func init() {
	log2ri.Var((*flagx.Kind)(&log2ri.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&log2ri)
}
