package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// errQuit - returned by the quit handler to stop the loop without an error.
var errQuit = errors.New("quit")

type uGame interface {
	StartGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, error)
	RestartGame(ctx context.Context) (*entity.Game, error)
	CurrentGame() (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	in     io.Reader
	out    io.Writer
	prompt string

	handlers map[string]func(ctx context.Context, message *Message) error
}

func New(logger *slog.Logger, uGame uGame, in io.Reader, out io.Writer, prompt string) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		in:     in,
		out:    out,
		prompt: prompt,

		handlers: make(map[string]func(context.Context, *Message) error),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionState] = server.handleState
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - starts a game and processes commands until the input ends, "quit" is typed or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	// stops readLines on every return path
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game, err := that.uGame.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	if err = that.printf("Tic-Tac-Toe, game %s. Type \"help\" for commands.\n", game.ID); err != nil {
		return err
	}

	if err = that.renderGame(game); err != nil {
		return err
	}

	lines := make(chan string)
	readErrCh := make(chan error, 1)
	go that.readLines(ctx, lines, readErrCh)

	for {
		if err = that.printf("%s", that.prompt); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case err = <-readErrCh:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			log.Info("input closed, stopping console")
			return nil
		case line := <-lines:
			if err = that.handleMessage(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					log.Info("player quit")
					return nil
				}

				return err
			}
		}
	}
}

// handleMessage - parses one line and dispatches it to the matching handler.
func (that *Server) handleMessage(ctx context.Context, line string) error {
	log := that.logger.With("method", "handleMessage")

	message, err := parseMessage(line)
	if errors.Is(err, ErrEmptyMessage) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to parse message: %w", err)
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action", "action", message.Action)
		return that.printf("unknown command %q, type \"help\"\n", message.Action)
	}

	return handler(ctx, message)
}

// readLines - sends every input line to lines, then nil or the read error to errCh.
func (that *Server) readLines(ctx context.Context, lines chan<- string, errCh chan<- error) {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	errCh <- scanner.Err()
}

func (that *Server) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
