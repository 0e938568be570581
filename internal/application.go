package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-core/internal/usecase"
)

// RunApp - runs the console game until the input ends, the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	firstMark, err := conf.Mark()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	gameUseCase, err := usecase.NewGameUseCase(logger, firstMark)
	if err != nil {
		return fmt.Errorf("could not create game use case: %w", err)
	}

	log.Info("Starting console", "firstMark", firstMark.String())

	server := console.New(logger, gameUseCase, in, out, conf.Prompt)
	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console stopped")

	return nil
}
