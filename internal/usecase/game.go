package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
)

var ErrInvalidFirstMark = errors.New("first mark must be X or O")

type GameUseCase interface {
	StartGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, error)
	RestartGame(ctx context.Context) (*entity.Game, error)
	CurrentGame() (*entity.Game, error)
}

// gameUseCase - keeps one hot-seat game in memory. The engine has no locking,
// so every access to the game goes through mu.
type gameUseCase struct {
	logger    *slog.Logger
	firstMark tictactoe.Cell

	mu   sync.Mutex
	game *entity.Game
}

func NewGameUseCase(logger *slog.Logger, firstMark tictactoe.Cell) (GameUseCase, error) {
	if firstMark != tictactoe.MarkX && firstMark != tictactoe.MarkO {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFirstMark, firstMark)
	}

	return &gameUseCase{
		logger:    logger.With("component", "usecase"),
		firstMark: firstMark,
	}, nil
}

func (that *gameUseCase) StartGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = entity.NewGame(uuid.NewString(), that.firstMark)

	that.logger.InfoContext(ctx, "game started", "method", "StartGame", "gameID", that.game.ID, "turn", that.game.Turn.String())

	return that.snapshot(), nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	if err := that.game.ConfirmOngoingState(); err != nil {
		log.DebugContext(ctx, "game is not ongoing", "gameID", that.game.ID, "status", that.game.Status, "error", err)

		return that.snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	mark := that.game.Turn
	if err := that.game.MakeTurn(mark, row, col); err != nil {
		log.DebugContext(ctx, "turn rejected", "gameID", that.game.ID, "mark", mark.String(), "row", row, "col", col, "error", err)

		return that.snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	log.DebugContext(ctx, "turn made", "gameID", that.game.ID, "mark", mark.String(), "row", row, "col", col)

	if that.game.IsFinished() {
		log.InfoContext(ctx, "game finished", "gameID", that.game.ID, "outcome", that.game.Outcome().String())

		return that.snapshot(), apperror.ErrGameFinished
	}

	return that.snapshot(), nil
}

func (that *gameUseCase) RestartGame(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		that.game = entity.NewGame(uuid.NewString(), that.firstMark)

		that.logger.InfoContext(ctx, "game started", "method", "RestartGame", "gameID", that.game.ID)

		return that.snapshot(), nil
	}

	previousID := that.game.ID
	that.game.Reset()
	that.game.ID = uuid.NewString()

	that.logger.InfoContext(ctx, "game restarted", "method", "RestartGame", "previousGameID", previousID, "gameID", that.game.ID)

	return that.snapshot(), nil
}

func (that *gameUseCase) CurrentGame() (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, apperror.ErrNoActiveGame
	}

	return that.snapshot(), nil
}

// snapshot - copy of the current game, callers never share the board with the use case.
func (that *gameUseCase) snapshot() *entity.Game {
	game := *that.game

	return &game
}
