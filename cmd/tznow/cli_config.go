package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const defaultTimezone = "UTC"

// cliConfig holds user-supplied configuration resolved from flags.
type cliConfig struct {
	timezone    string
	format      string // layout name or literal Go layout for text output
	output      string // text | json | yaml
	at          string // optional fixed instant replacing the wall clock
	debug       bool
	printConfig bool
	showHelp    bool
	showVersion bool

	// parseError carries a user-facing message when parseFlags returns non-zero
	parseError string
}

func defaultConfig() cliConfig {
	return cliConfig{
		timezone: defaultTimezone,
		format:   "default",
		output:   outputText,
	}
}

// parseFlags parses args on a fresh FlagSet. It returns exit code 2 on
// any usage error with cfg.parseError describing the problem. Help and
// version are ordinary flags, so a value such as `-tz help` stays a value.
func parseFlags(args []string) (cliConfig, int) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("tznow", flag.ContinueOnError)
	// Silence automatic usage/errors; we handle messaging ourselves.
	fs.SetOutput(io.Discard)

	// -tz and -timezone share one destination; the last occurrence wins.
	fs.StringVar(&cfg.timezone, "timezone", cfg.timezone, "Timezone identifier, e.g. UTC or America/New_York")
	fs.StringVar(&cfg.timezone, "tz", cfg.timezone, "Alias for -timezone")
	fs.StringVar(&cfg.format, "format", cfg.format, "Layout name or Go layout for text output")
	fs.StringVar(&cfg.output, "output", cfg.output, "Output encoding: text|json|yaml")
	fs.StringVar(&cfg.at, "at", "", "Use this instant instead of the system clock")
	fs.BoolVar(&cfg.debug, "debug", false, "Write debug logs to stderr")
	fs.BoolVar(&cfg.printConfig, "print-config", false, "Print resolved config and exit")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")
	// -h and -help are left unregistered; Parse reports them as flag.ErrHelp.

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cfg.showHelp = true
			return cfg, 0
		}
		cfg.parseError = err.Error()
		return cfg, 2
	}
	if fs.NArg() == 1 && fs.Arg(0) == "help" {
		cfg.showHelp = true
		return cfg, 0
	}
	if fs.NArg() > 0 {
		cfg.parseError = fmt.Sprintf("unexpected argument %q", fs.Arg(0))
		return cfg, 2
	}
	cfg.output = strings.ToLower(strings.TrimSpace(cfg.output))
	if !validOutput(cfg.output) {
		cfg.parseError = fmt.Sprintf("invalid -output %q (want text|json|yaml)", cfg.output)
		return cfg, 2
	}
	return cfg, 0
}
