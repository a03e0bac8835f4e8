package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/toggles/internal/cli"
	"github.com/idilsaglam/toggles/internal/config"
	"github.com/idilsaglam/toggles/internal/logging"
	"github.com/idilsaglam/toggles/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run wires config, theme and logging, then hands off to the CLI router.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("toggles", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { cli.PrintHelp(stderr) }

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail(stderr, err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(cfg.ForceColor(), cfg.NoColor())

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	logger, closer, err := logging.OpenFile(cfg.LogFile, opts)
	if err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	defer closer.Close()

	logger.Debug("config loaded", "file", cfg.ConfigFile, "theme", cfg.Theme, "args", cfg.Args)
	if len(cfg.Unknown) > 0 {
		logger.Warn("unknown config keys", "file", cfg.ConfigFile, "keys", cfg.Unknown)
		ui.Hint(stderr, fmt.Sprintf("%s: unknown keys %v", cfg.ConfigFile, cfg.Unknown))
	}

	return cli.Run(ctx, cfg.Args, cli.Options{
		JSON:      cfg.JSON,
		AltScreen: cfg.AltScreen,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
	})
}
