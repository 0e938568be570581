package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T, first tictactoe.Cell) GameUseCase {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	useCase, err := NewGameUseCase(logger, first)
	require.NoError(t, err)

	return useCase
}

func TestNewGameUseCase(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	for _, mark := range []tictactoe.Cell{tictactoe.Empty, tictactoe.Cell(9)} {
		_, err := NewGameUseCase(logger, mark)
		require.ErrorIs(t, err, ErrInvalidFirstMark)
	}
}

func TestGameUseCase_StartGame(t *testing.T) {
	ctx := context.Background()

	// Given: a use case where O moves first
	useCase := newTestUseCase(t, tictactoe.MarkO)

	// When: a game is started
	game, err := useCase.StartGame(ctx)

	// Then: the game is empty, ongoing and O is to move
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, tictactoe.Board{}, game.Board)
	assert.Equal(t, entity.StatusOngoing, game.Status)
	assert.Equal(t, tictactoe.MarkO, game.Turn)

	current, err := useCase.CurrentGame()
	require.NoError(t, err)
	assert.Equal(t, game, current)
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns ErrNoActiveGame before a game is started", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)

		_, err := useCase.MakeTurn(ctx, 0, 0)
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)

		_, err = useCase.CurrentGame()
		require.ErrorIs(t, err, apperror.ErrNoActiveGame)
	})

	t.Run("Alternates marks", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		_, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		// When: two turns are made
		_, err = useCase.MakeTurn(ctx, 0, 0)
		require.NoError(t, err)
		game, err := useCase.MakeTurn(ctx, 1, 1)
		require.NoError(t, err)

		// Then: X and O were placed and X is to move again
		assert.Equal(t, tictactoe.MarkX, game.Board[0][0])
		assert.Equal(t, tictactoe.MarkO, game.Board[1][1])
		assert.Equal(t, tictactoe.MarkX, game.Turn)
	})

	t.Run("Occupied cell keeps the turn", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		_, err := useCase.StartGame(ctx)
		require.NoError(t, err)
		_, err = useCase.MakeTurn(ctx, 0, 0)
		require.NoError(t, err)

		// When: O plays the same cell
		game, err := useCase.MakeTurn(ctx, 0, 0)

		// Then: ErrCellOccupied is returned and O is still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, tictactoe.MarkO, game.Turn)
	})

	t.Run("Out of bounds is reported", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		_, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		game, err := useCase.MakeTurn(ctx, 3, 1)

		require.ErrorIs(t, err, tictactoe.ErrOutOfBounds)
		assert.Equal(t, tictactoe.Board{}, game.Board)
	})

	t.Run("Winning move returns ErrGameFinished", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		_, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		// Given: X(0,0), O(0,1), X(1,1), O(0,2)
		for _, move := range [][2]int{{0, 0}, {0, 1}, {1, 1}, {0, 2}} {
			_, err = useCase.MakeTurn(ctx, move[0], move[1])
			require.NoError(t, err)
		}

		// When: X completes the main diagonal
		game, err := useCase.MakeTurn(ctx, 2, 2)

		// Then: the finished game is returned with ErrGameFinished
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, tictactoe.MarkX, game.Winner)

		// And: further turns are refused
		_, err = useCase.MakeTurn(ctx, 2, 0)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Unknown game status is rejected", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		_, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		// Given: the stored game has a status the use case does not know
		impl, ok := useCase.(*gameUseCase)
		require.True(t, ok)
		impl.game.Status = "paused"

		// When: a turn is made
		game, err := useCase.MakeTurn(ctx, 0, 0)

		// Then: the turn is refused and the board is untouched
		require.ErrorIs(t, err, entity.ErrUnknownGameStatus)
		assert.Equal(t, tictactoe.Board{}, game.Board)
	})

	t.Run("Returned game is a copy", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		game, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		game.Board[0][0] = tictactoe.MarkO

		current, err := useCase.CurrentGame()
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Empty, current.Board[0][0])
	})
}

func TestGameUseCase_RestartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts a game when none exists", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)

		game, err := useCase.RestartGame(ctx)

		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, tictactoe.OutcomeOngoing, game.Outcome())
	})

	t.Run("Replaces a finished game", func(t *testing.T) {
		useCase := newTestUseCase(t, tictactoe.MarkX)
		started, err := useCase.StartGame(ctx)
		require.NoError(t, err)

		for _, move := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			_, err = useCase.MakeTurn(ctx, move[0], move[1])
			require.NoError(t, err)
		}
		_, err = useCase.MakeTurn(ctx, 0, 2)
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		// When: the game is restarted
		game, err := useCase.RestartGame(ctx)

		// Then: a new empty game with a new ID is active
		require.NoError(t, err)
		assert.NotEqual(t, started.ID, game.ID)
		assert.Equal(t, tictactoe.Board{}, game.Board)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, tictactoe.MarkX, game.Turn)

		_, err = useCase.MakeTurn(ctx, 1, 1)
		require.NoError(t, err)
	})
}
