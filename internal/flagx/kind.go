package flagx

import (
	"flag"

	"bazil.org/intmath/internal/kinds"
)

// Kind selects an integer type by its Go name.
type Kind kinds.Kind

var _ flag.Value = (*Kind)(nil)

func (k *Kind) String() string {
	return kinds.Kind(*k).String()
}

func (k *Kind) Set(s string) error {
	tmp, err := kinds.Parse(s)
	if err != nil {
		return err
	}
	*k = Kind(tmp)
	return nil
}
