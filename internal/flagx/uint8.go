package flagx

import (
	"flag"
	"strconv"
)

type Uint8 uint8

var _ flag.Value = (*Uint8)(nil)

func (u *Uint8) String() string {
	return strconv.FormatUint(uint64(*u), 10)
}

func (u *Uint8) Set(s string) error {
	tmp, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return err
	}
	*u = Uint8(tmp)
	return nil
}

// Uint64 accepts Go integer literal syntax, such as 0x100 or
// 1_048_576.
type Uint64 uint64

var _ flag.Value = (*Uint64)(nil)

func (u *Uint64) String() string {
	return strconv.FormatUint(uint64(*u), 10)
}

func (u *Uint64) Set(s string) error {
	tmp, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	*u = Uint64(tmp)
	return nil
}
