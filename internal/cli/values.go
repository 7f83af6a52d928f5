package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"bazil.org/intmath/internal/kinds"
	"bazil.org/intmath/internal/multierr"
	"golang.org/x/term"
)

// Values returns args, or if there are none, the lines of standard
// input.
func Values(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if term.IsTerminal(0) {
		return nil, errors.New("refusing to read from terminal")
	}
	return readValues(os.Stdin)
}

// readValues returns the non-empty lines of r, with surrounding space
// removed.
func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read values: %w", err)
	}
	return values, nil
}

// Evaluate writes the result of op for every value, one per line.
// Values that fail to parse are skipped and reported together.
func Evaluate(w io.Writer, kind kinds.Kind, op kinds.Op, values []string) error {
	var errs []error
	for _, v := range values {
		res, err := kind.Eval(op, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	return multierr.Combine(errs)
}

// EvaluateArgs is the Run of the single-operation commands.
func EvaluateArgs(kind kinds.Kind, op kinds.Op, args []string) error {
	values, err := Values(args)
	if err != nil {
		return err
	}
	IntMath.Verbosef("%s of %d %s values", op, len(values), kind)
	return Evaluate(os.Stdout, kind, op, values)
}
