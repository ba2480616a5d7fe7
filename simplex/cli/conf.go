package cli

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/simplex"
	"github.com/npillmayer/simplex/vm"
)

// loadConfig runs before every command. Configuration files are located with
// application key SIMPLEX and written in NestedText. Command line flags
// override them. Failures terminate the application.
func loadConfig() {
	k := koanf.New(".")
	konf := koanfadapter.New(k, "SIMPLEX", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf("%v", err)
		simplex.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf("%v", err)
		simplex.Exit(1)
	}
	simplex.Configuration = k
}

// mergeFlags loads the flags into the configuration and turns a log file
// name into a tracing destination URL.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return err
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go")
	paths := locateLogFile()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
		tracing.Infof("trace destination is %q", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func locateLogFile() AppPaths {
	paths, err := DefaultAppPaths("Simplex")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}

// machineOptions collects the machine settings from the global configuration.
func machineOptions() ([]vm.Option, error) {
	var opts []vm.Option
	k := simplex.Configuration
	if k == nil {
		return opts, nil
	}
	if f := k.String("fuel"); f != "" && !strings.EqualFold(f, "infinity") {
		fuel, err := simplex.ParseValue(f)
		if err != nil {
			return nil, fmt.Errorf("invalid fuel %q: %w", f, err)
		}
		opts = append(opts, vm.WithFuel(fuel))
	}
	if k.Exists("cell-limit") {
		opts = append(opts, vm.WithCellLimit(k.Int("cell-limit")))
	}
	if limit := k.Int64("step-limit"); limit > 0 {
		opts = append(opts, vm.WithStepLimit(uint64(limit)))
	}
	tracer().Debugf("machine configured with %d options", len(opts))
	return opts, nil
}
