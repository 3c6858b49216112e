package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/session"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "config.json", "path to a JSON config file")
	interactive := flag.Bool("i", false, "read commands from stdin")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("invalid configuration", "err", err)
			os.Exit(1)
		}
		logger.Info("using default configuration", "path", *configPath)
		config = utils.DefaultConfig()
	}
	config.Interactive = config.Interactive || *interactive

	if err = run(os.Stdin, os.Stdout, config, logger); err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
}

// run wires the game together and blocks until it ends
func run(in io.Reader, out io.Writer, config utils.Config, logger *slog.Logger) error {
	src := config.RandomSource()
	initial, err := session.NewInitialState(config, src)
	if err != nil {
		return err
	}

	var (
		stats      = utils.NewStats()
		renderer   = model.NewTerminalRenderer(out)
		dispatcher = session.NewDispatcher(initial)
		panel      = session.NewPanel(dispatcher, src)
		scheduler  = session.NewScheduler(dispatcher, config.StepInterval, config.MaxGenerations, logger)
		ctrl       = newController(dispatcher, panel, scheduler, renderer)
	)
	dispatcher.Subscribe(statsSubscriber(stats))
	dispatcher.Subscribe(viewSubscriber(renderer, stats, logger))

	displayGameInfo(out, config, initial)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return scheduler.Run(ctx)
	})
	if config.Interactive {
		eg.Go(func() error {
			return readCommands(ctx, in, ctrl, logger)
		})
	}

	err = eg.Wait()
	fmt.Fprintf(out, "Final stats: %d generations in %d steps, %.1f avg population, %d edits\n",
		scheduler.Generations(), dispatcher.State().StepCount, stats.AveragePopulation, stats.Edits)

	switch {
	case err == nil,
		errors.Is(err, errQuit),
		errors.Is(err, session.ErrGenerationLimit),
		errors.Is(err, context.Canceled):
		logger.Info("shutting down gracefully")
		return nil
	}
	return err
}

// readCommands feeds stdin lines to the controller until ctx is done
func readCommands(ctx context.Context, in io.Reader, ctrl *controller, logger *slog.Logger) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := ctrl.handle(line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				logger.Warn("command failed", "line", line, "err", err)
			}
		}
	}
}
