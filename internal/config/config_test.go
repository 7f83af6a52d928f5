package config_test

import (
	"errors"
	"strings"
	"testing"

	"bazil.org/intmath/internal/config"
	"bazil.org/intmath/internal/multierr"
	"bazil.org/intmath/partition"
	"github.com/google/go-cmp/cmp"
)

func TestReadConfig(t *testing.T) {
	cfg, err := config.ReadConfig("testdata/config.hcl")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	want := &config.Profile{
		Name:         "radix",
		TileMin:      4096,
		TileMax:      1 << 24,
		TileGoal:     65536,
		MaxRadixBits: 10,
	}
	if diff := cmp.Diff(want, cfg.GetDefaultProfile()); diff != "" {
		t.Errorf("default profile mismatch (-want +got):\n%s", diff)
	}
	small, ok := cfg.GetProfile("small")
	if !ok {
		t.Fatal("profile small not found")
	}
	if diff := cmp.Diff(&config.Profile{Name: "small", TileMax: 1024}, small); diff != "" {
		t.Errorf("small profile mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cfg.GetProfile("missing"); ok {
		t.Error("unexpected profile")
	}
}

func TestProfilePlanner(t *testing.T) {
	cfg, err := config.ReadConfig("testdata/config.hcl")
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	plan, err := cfg.GetDefaultProfile().Planner().Plan(1 << 26)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := partition.Plan{
		Count:     1 << 26,
		TileBits:  16,
		TileSize:  1 << 16,
		Tiles:     1 << 10,
		RadixBits: 10,
		Padded:    1 << 26,
	}
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	run := func(name string, src string, wantErrs ...string) {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseConfig("test.hcl", []byte(src))
			if err == nil {
				t.Fatal("expected error")
			}
			var got []string
			var m multierr.MultiErr
			if errors.As(err, &m) {
				for _, e := range m {
					got = append(got, e.Error())
				}
			} else {
				got = append(got, err.Error())
			}
			if len(got) != len(wantErrs) {
				t.Fatalf("bad error count: %q", got)
			}
			for i, e := range wantErrs {
				if !strings.Contains(got[i], e) {
					t.Errorf("error %d: %q does not contain %q", i, got[i], e)
				}
			}
		})
	}
	run("no profiles", `default_profile = "x"`, "at least one profile")
	run("missing default", `
default_profile = "x"
profile "y" {}
`, `default profile "x" not found`)
	run("several", `
default_profile = "a/b"
profile "a/b" {
  tile_min = 2048
  tile_max = 1024
}
profile "a/b" {}
`, "must not contain slashes", "tile_min 2048 is larger than tile_max 1024", `duplicate profile: "a/b"`)
	run("bad pow2", `
default_profile = "x"
profile "x" {
  tile_max = pow2(70)
}
`, "exponent must be between 0 and 62")
	run("negative", `
default_profile = "x"
profile "x" {
  tile_min = -1
}
`, "cannot read config")
}

func TestProfileZeroKeepsDefaults(t *testing.T) {
	got := (&config.Profile{Name: "empty"}).Planner()
	min, max := got.TileRange()
	wantMin, wantMax := partition.New().TileRange()
	if diff := cmp.Diff([]uint64{wantMin, wantMax}, []uint64{min, max}); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
}
