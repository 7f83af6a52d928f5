package table

import (
	"flag"
	"os"

	cliintmath "bazil.org/intmath/internal/cli"
	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
	"github.com/tv42/cliutil/subcommands"
)

type tableCommand struct {
	subcommands.Description
	flag.FlagSet
	Flags struct {
		Type kinds.Kind
	}
	Arguments struct {
		Value []string
	}
}

func (c *tableCommand) Run() error {
	values, err := cliintmath.Values(c.Arguments.Value)
	if err != nil {
		return err
	}
	return cliintmath.WriteTable(os.Stdout, c.Flags.Type, values)
}

var table = tableCommand{
	Description: "show every operation for each value",
}

func init() {
	table.Var((*flagx.Kind)(&table.Flags.Type), "type", "integer type of the values")
	subcommands.Register(&table)
}
