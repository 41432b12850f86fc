// Package main is the entry point for dungeonforge.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeonforge/internal/config"
	"github.com/samdwyer/dungeonforge/internal/game"
	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/ui"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// setupFunc installs a tracer provider and returns its shutdown function.
type setupFunc func(context.Context, telemetry.Options) (func(context.Context) error, error)

func main() {
	// .env is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, setupTelemetry)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code. Every
// deferred cleanup, including the trace flush, completes before it returns.
func run(ctx context.Context, args []string, stdout io.Writer, setup setupFunc) int {
	fs := flag.NewFlagSet("dungeonforge", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file")
	seedFlag := fs.String("seed", "", "comma-separated seed, e.g. 1,2,3,8")
	rooms := fs.Int("rooms", 0, "number of rooms (overrides config)")
	tries := fs.Int("tries", 0, "maximum attempts (overrides config)")
	mode := fs.String("mode", "", "render mode: ascii or tui (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("loading config: %v", err)
		return 1
	}
	if err := applyFlags(&cfg, *seedFlag, *rooms, *tries, *mode); err != nil {
		log.Printf("invalid flags: %v", err)
		return 2
	}

	logger, err := telemetry.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Printf("initializing logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Telemetry.Enabled {
		shutdown, err := setup(ctx, telemetry.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
		})
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without traces", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("shutting down telemetry", zap.Error(err))
				}
			}()
		}
	}

	generator := world.NewGenerator(
		world.WithTuning(cfg.Tuning),
		world.WithLogger(logger),
	)

	if cfg.Render.Mode == "tui" {
		viewer, err := game.New(game.Config{
			Seed:      cfg.Generation.Seed,
			RoomCount: cfg.Generation.RoomCount,
			MaxTries:  cfg.Generation.MaxTries,
		}, generator, logger)
		if err != nil {
			logger.Error("initializing viewer", zap.Error(err))
			return 1
		}
		if err := viewer.Run(ctx); err != nil {
			logger.Error("viewer error", zap.Error(err))
			return 1
		}
		return 0
	}

	return printDungeon(ctx, cfg, generator, stdout, logger)
}

// printDungeon generates one dungeon and writes it to stdout. It returns the
// process exit code.
func printDungeon(ctx context.Context, cfg config.Config, generator *world.Generator, stdout io.Writer, logger *zap.Logger) int {
	gen := cfg.Generation
	d, ok := generator.Generate(ctx, gen.Seed, gen.RoomCount, gen.MaxTries)
	if !ok {
		fmt.Fprintf(os.Stderr, "no dungeon for seed %v within %d tries\n", gen.Seed, gen.MaxTries)
		return 1
	}

	colors := cfg.Render.Color == "always"
	f, isFile := stdout.(*os.File)
	if isFile {
		colors = ui.ColorEnabled(cfg.Render.Color, f)
	}
	renderer := ui.NewASCIIRenderer(colors)
	if isFile && ui.IsTerminal(f) {
		if width, _ := ui.TerminalSize(); renderer.Width(d) > width {
			logger.Warn("dungeon is wider than the terminal",
				zap.Int("width", renderer.Width(d)),
				zap.Int("terminal_width", width),
			)
		}
	}
	if err := renderer.Render(stdout, d); err != nil {
		logger.Error("writing dungeon", zap.Error(err))
		return 1
	}
	return 0
}

// setupTelemetry exports traces over OTLP HTTP.
func setupTelemetry(ctx context.Context, opts telemetry.Options) (func(context.Context) error, error) {
	setupOTelEnv()
	return telemetry.Setup(ctx, opts)
}

// setupOTelEnv builds OTLP headers from a Honeycomb API key when one is set
// and no headers were configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONFORGE_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONFORGE_DATASET")
	if dataset == "" {
		dataset = "dungeonforge"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
