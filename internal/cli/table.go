package cli

import (
	"io"
	"strconv"

	"bazil.org/intmath/internal/kinds"
	"bazil.org/intmath/internal/multierr"
	"bazil.org/intmath/partition"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)
	return table
}

// WriteTable writes every operation's result for each value. Rows
// that fail to parse are left out and reported together.
func WriteTable(w io.Writer, kind kinds.Kind, values []string) error {
	header := []string{kind.String()}
	for _, op := range kinds.Ops {
		header = append(header, op.String())
	}
	table := newTable(w, header...)

	var errs []error
values:
	for _, v := range values {
		row := []string{v}
		for _, op := range kinds.Ops {
			res, err := kind.Eval(op, v)
			if err != nil {
				errs = append(errs, err)
				continue values
			}
			row = append(row, res)
		}
		table.Append(row)
	}
	table.Render()
	return multierr.Combine(errs)
}

// WritePlans writes one row per plan.
func WritePlans(w io.Writer, plans []partition.Plan) {
	table := newTable(w, "count", "tile bits", "tile size", "tiles", "radix bits", "padded")
	for _, p := range plans {
		table.Append([]string{
			strconv.FormatUint(p.Count, 10),
			strconv.Itoa(p.TileBits),
			strconv.FormatUint(p.TileSize, 10),
			strconv.FormatUint(p.Tiles, 10),
			strconv.Itoa(p.RadixBits),
			strconv.FormatUint(p.Padded, 10),
		})
	}
	table.Render()
}
