package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hyperifyio/tznow/internal/clock"
)

func main() {
	os.Exit(cliMain(os.Args[1:], os.Stdout, os.Stderr))
}

// cliMain is the testable entrypoint. It accepts argv (excluding program name)
// and writers for stdout/stderr and returns the intended process exit code.
func cliMain(args []string, stdout io.Writer, stderr io.Writer) int {
	return execute(args, stdout, stderr, nil)
}

// execute runs the CLI with an optional provider override; when p is nil the
// provider is derived from the parsed flags.
func execute(args []string, stdout io.Writer, stderr io.Writer, p clock.Provider) int {
	cfg, exitOn := parseFlags(args)
	if exitOn != 0 {
		writeLine(stderr, "error: "+cfg.parseError)
		printUsage(stderr)
		return exitOn
	}
	switch {
	case cfg.showHelp:
		printUsage(stdout)
		return 0
	case cfg.showVersion:
		writeLine(stdout, readBuildDetails().String())
		return 0
	case cfg.printConfig:
		if err := printResolvedConfig(cfg, stdout); err != nil {
			writeError(stderr, err)
			return 1
		}
		return 0
	}

	logger := newLogger(cfg.debug, stderr)
	if p == nil {
		var err error
		p, err = newProvider(cfg)
		if err != nil {
			writeError(stderr, err)
			return 1
		}
	}
	if err := run(cfg, p, logger, stdout); err != nil {
		if errors.Is(err, clock.ErrInvalidTimezone) {
			logger.Debug("timezone rejected", "timezone", cfg.timezone)
		}
		writeError(stderr, err)
		return 1
	}
	return 0
}

// run asks p for the current moment in cfg.timezone and writes it to stdout.
func run(cfg cliConfig, p clock.Provider, logger *slog.Logger, stdout io.Writer) error {
	logger.Debug("resolving current moment", "timezone", cfg.timezone, "provider", providerName(cfg))
	now, err := p.Now(cfg.timezone)
	if err != nil {
		return err
	}
	logger.Debug("resolved", "location", now.Location().String(), "unix", now.Unix())
	return writeMoment(stdout, now, cfg.output, cfg.format)
}

func newProvider(cfg cliConfig) (clock.Provider, error) {
	if strings.TrimSpace(cfg.at) == "" {
		return clock.System{Clock: clock.RealClock{}}, nil
	}
	at, err := clock.ParseInstant(cfg.at)
	if err != nil {
		return nil, err
	}
	return clock.Fixed{At: at}, nil
}

func providerName(cfg cliConfig) string {
	if strings.TrimSpace(cfg.at) != "" {
		return "fixed"
	}
	return "system"
}

// newLogger writes structured diagnostics to w. Without -debug only warnings
// and errors pass, so a normal run leaves stderr empty.
func newLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
