package config

import (
	"errors"
	"fmt"
	"strings"

	"bazil.org/intmath/internal/multierr"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

type Config struct {
	DefaultProfile string     `hcl:"default_profile"`
	Profiles       []*Profile `hcl:"profile,block"`
	profiles       map[string]*Profile
}

func (cfg *Config) GetDefaultProfile() *Profile {
	return cfg.profiles[cfg.DefaultProfile]
}

func (cfg *Config) GetProfile(name string) (_ *Profile, ok bool) {
	prof, ok := cfg.profiles[name]
	return prof, ok
}

func ParseConfig(filename string, src []byte) (*Config, error) {
	var cfg Config
	if err := hclsimple.Decode(filename, src, evalCtx, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return parseConfig(&cfg)
}

func ReadConfig(p string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(p, evalCtx, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return parseConfig(&cfg)
}

func parseConfig(cfg *Config) (*Config, error) {
	if len(cfg.Profiles) == 0 {
		return nil, errors.New("must have at least one profile")
	}

	var errs []error
	cfg.profiles = make(map[string]*Profile, len(cfg.Profiles))
	for _, prof := range cfg.Profiles {
		if _, found := cfg.profiles[prof.Name]; found {
			errs = append(errs, fmt.Errorf("duplicate profile: %q", prof.Name))
			continue
		}
		cfg.profiles[prof.Name] = prof

		if strings.ContainsAny(prof.Name, "/\x00") {
			errs = append(errs, fmt.Errorf("config block profile %q name must not contain slashes or zero bytes", prof.Name))
		}
		if err := prof.validate(); err != nil {
			errs = append(errs, fmt.Errorf("config block profile %q: %w", prof.Name, err))
		}
	}

	if _, ok := cfg.profiles[cfg.DefaultProfile]; !ok {
		errs = append(errs, fmt.Errorf("default profile %q not found", cfg.DefaultProfile))
	}

	if err := multierr.Combine(errs); err != nil {
		return nil, err
	}
	return cfg, nil
}
