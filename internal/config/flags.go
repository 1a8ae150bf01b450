package config

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (o *Overrides) String() string {
	return strings.Join(*o, ",")
}

// Set appends one override.
func (o *Overrides) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*o = append(*o, value)
	return nil
}

// Map returns the overrides keyed by name. Later values win.
func (o Overrides) Map() map[string]string {
	kv := make(map[string]string, len(o))
	for _, item := range o {
		parts := strings.SplitN(item, "=", 2)
		kv[strings.TrimSpace(parts[0])] = parts[1]
	}
	return kv
}

// Parse binds the standard flags plus -config and -set to fs, parses args and
// returns the validated configuration. Flags given explicitly on the command
// line take precedence over the file; -set overrides are applied last.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := DefaultConfig()
	var path string
	var overrides Overrides
	fs.StringVar(&path, "config", "", "YAML config file")
	fs.Var(&overrides, "set", "config override in key=value form (repeatable)")
	cfg.Bind(fs)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if path != "" {
		fileCfg, err := LoadFile(path, DefaultConfig())
		if err != nil {
			return cfg, err
		}
		if err := reapplyFlags(fs, &fileCfg); err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	if err := cfg.FromMap(overrides.Map()); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// reapplyFlags copies every flag set on the command line onto cfg.
func reapplyFlags(fs *flag.FlagSet, cfg *Config) error {
	bound := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	cfg.Bind(bound)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil || bound.Lookup(f.Name) == nil {
			return
		}
		err = bound.Set(f.Name, f.Value.String())
	})
	return err
}
