package flagx_test

import (
	"flag"
	"io"
	"testing"

	"bazil.org/intmath/internal/flagx"
	"bazil.org/intmath/internal/kinds"
)

func TestFlags(t *testing.T) {
	var (
		radix uint8
		size  uint64
		kind  kinds.Kind
	)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var((*flagx.Uint8)(&radix), "radix", "")
	fs.Var((*flagx.Uint64)(&size), "size", "")
	fs.Var((*flagx.Kind)(&kind), "type", "")
	if err := fs.Parse([]string{"-radix", "0x10", "-size", "1_048_576", "-type", "uint16"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g, e := radix, uint8(16); g != e {
		t.Errorf("bad radix: %v != %v", g, e)
	}
	if g, e := size, uint64(1<<20); g != e {
		t.Errorf("bad size: %v != %v", g, e)
	}
	if g, e := kind, kinds.Uint16; g != e {
		t.Errorf("bad kind: %v != %v", g, e)
	}
}

func TestBadKind(t *testing.T) {
	var kind kinds.Kind
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var((*flagx.Kind)(&kind), "type", "")
	if err := fs.Parse([]string{"-type", "float32"}); err == nil {
		t.Fatal("expected error")
	}
}
