package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"

	"bazil.org/intmath/internal/config"
	"bazil.org/intmath/partition"
	"github.com/tv42/cliutil/subcommands"
)

type intmath struct {
	flag.FlagSet
	Flags struct {
		Verbose    bool
		Config     string
		CPUProfile string
	}
}

var _ Service = (*intmath)(nil)

func (im *intmath) Setup() (ok bool) {
	if im.Flags.CPUProfile != "" {
		f, err := os.Create(im.Flags.CPUProfile)
		if err != nil {
			log.Printf("cpu profiling: %v", err)
			return false
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Printf("cpu profiling: %v", err)
			return false
		}
	}
	return true
}

func (im *intmath) Teardown() (ok bool) {
	if im.Flags.CPUProfile != "" {
		pprof.StopCPUProfile()
	}
	return true
}

// Verbosef logs only when -v was given.
func (im *intmath) Verbosef(format string, args ...interface{}) {
	if im.Flags.Verbose {
		log.Printf(format, args...)
	}
}

// Config reads the config file. A missing file is not an error; it
// returns nil.
func (im *intmath) Config() (*config.Config, error) {
	if im.Flags.Config == "" {
		return nil, nil
	}
	if _, err := os.Stat(im.Flags.Config); errors.Is(err, fs.ErrNotExist) {
		im.Verbosef("no config file at %s", im.Flags.Config)
		return nil, nil
	}
	return config.ReadConfig(im.Flags.Config)
}

// Profile finds the named planner profile. An empty name picks the
// default from local config, then from the config file. Without a
// config file, an empty name gives the built-in defaults.
func (im *intmath) Profile(name string) (*config.Profile, error) {
	if name == "" {
		local, err := config.ReadLocalConfig()
		if err != nil {
			return nil, err
		}
		name = local.DefaultProfile
	}
	cfg, err := im.Config()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		if name != "" {
			return nil, fmt.Errorf("profile %q requested but no config file", name)
		}
		return &config.Profile{Name: "builtin"}, nil
	}
	if name == "" {
		return cfg.GetDefaultProfile(), nil
	}
	prof, ok := cfg.GetProfile(name)
	if !ok {
		return nil, fmt.Errorf("profile not found: %q", name)
	}
	return prof, nil
}

// Planner builds a planner from the named profile. Options in extra
// apply after the profile's.
func (im *intmath) Planner(profile string, extra ...partition.Option) (*partition.Planner, error) {
	prof, err := im.Profile(profile)
	if err != nil {
		return nil, err
	}
	opts := append(prof.Options(), extra...)
	p := partition.New(opts...)
	min, max := p.TileRange()
	im.Verbosef("profile %s: tiles %d..%d", prof.Name, min, max)
	return p, nil
}

// IntMath allows command-line callables access to global flags, such
// as verbosity.
var IntMath = intmath{}

func init() {
	IntMath.BoolVar(&IntMath.Flags.Verbose, "v", false, "verbose output")

	defaultConfig := ""
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("no default config: %v", err)
	} else {
		defaultConfig = filepath.Join(configDir, "intmath", "config.hcl")
	}
	IntMath.StringVar(&IntMath.Flags.Config, "config", defaultConfig, "config file to read")
	IntMath.StringVar(&IntMath.Flags.CPUProfile, "cpuprofile", "", "write cpu profile to file")

	subcommands.Register(&IntMath)
}

// Service is an interface that commands can implement to setup and
// teardown services for the subcommands below them.
//
// As Run and potential multiple Teardown failures makes having a
// single error return impossible, Setup and Teardown only get to
// signal a boolean success. Any detail should be exposed via log.
type Service interface {
	Setup() (ok bool)
	Teardown() (ok bool)
}

func run(result subcommands.Result) (ok bool) {
	var cmd interface{}
	for _, cmd = range result.ListCommands() {
		if svc, isService := cmd.(Service); isService {
			ok = svc.Setup()
			if !ok {
				return false
			}
			defer func() {
				// Teardown failures can cause non-successful exit
				if !svc.Teardown() {
					ok = false
				}
			}()
		}
	}
	run := cmd.(subcommands.Runner)
	err := run.Run()
	if err != nil {
		log.Printf("error: %v", err)
		return false
	}
	return true
}

// Main is primary entry point into the intmath command line
// application.
func Main() (exitstatus int) {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	result, err := subcommands.Parse(&IntMath, progName, os.Args[1:])
	if err == flag.ErrHelp {
		result.Usage()
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", result.Name(), err)
		result.Usage()
		return 2
	}

	ok := run(result)
	if !ok {
		return 1
	}
	return 0
}
