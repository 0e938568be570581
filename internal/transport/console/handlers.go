package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/pkg/tictactoe"
)

const helpText = `Commands:
  <row> <col>     place the current mark, rows and columns are 0, 1 or 2
  move <row> <col>
  new             start a new game
  board           show the board
  state           print the game as JSON
  help            show this help
  quit            leave
`

func (that *Server) handleMove(ctx context.Context, msg *Message) error {
	log := that.logger.With("method", "handleMove")

	row, col, err := msg.Coordinates()
	if err != nil {
		log.Debug("bad coordinates", "args", msg.Args, "error", err)
		return that.printf("usage: <row> <col>, for example \"1 2\"\n")
	}

	game, err := that.uGame.MakeTurn(ctx, row, col)

	switch {
	case errors.Is(err, tictactoe.ErrOutOfBounds):
		return that.printf("row and column must be 0, 1 or 2\n")
	case errors.Is(err, apperror.ErrCellOccupied):
		return that.printf("cell is already occupied, try again. Free cells: %s\n", freeCells(game.Board))
	case errors.Is(err, apperror.ErrNoActiveGame):
		return that.printf("no active game, type \"new\"\n")
	case errors.Is(err, apperror.ErrGameFinished):
		return that.renderGame(game)
	case err != nil:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return that.renderGame(game)
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message) error {
	game, err := that.uGame.RestartGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	if err = that.printf("New game %s.\n", game.ID); err != nil {
		return err
	}

	return that.renderGame(game)
}

func (that *Server) handleBoard(_ context.Context, _ *Message) error {
	game, err := that.uGame.CurrentGame()
	if errors.Is(err, apperror.ErrNoActiveGame) {
		return that.printf("no active game, type \"new\"\n")
	}

	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	return that.renderGame(game)
}

func (that *Server) handleState(_ context.Context, _ *Message) error {
	game, err := that.uGame.CurrentGame()
	if errors.Is(err, apperror.ErrNoActiveGame) {
		return that.printf("no active game, type \"new\"\n")
	}

	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	return that.printf("%s\n", gameJSON)
}

func (that *Server) handleHelp(_ context.Context, _ *Message) error {
	return that.printf("%s", helpText)
}

func (that *Server) handleQuit(_ context.Context, _ *Message) error {
	if err := that.printf("bye\n"); err != nil {
		return err
	}

	return errQuit
}

// renderGame - prints the board followed by whose turn it is or the result.
func (that *Server) renderGame(game *entity.Game) error {
	if err := that.printf("\n%s\n", game.Board); err != nil {
		return err
	}

	outcome := game.Outcome()
	if !outcome.IsOver() {
		return that.printf("%s to move\n", game.Turn)
	}

	if outcome.Status == tictactoe.Draw {
		return that.printf("Draw! Type \"new\" to play again.\n")
	}

	return that.printf("%s wins! Type \"new\" to play again.\n", outcome.Winner)
}

// freeCells - "row col" pairs of the empty cells, in row-major order.
func freeCells(board tictactoe.Board) string {
	cells := board.EmptyCells()

	pairs := make([]string, 0, len(cells))
	for _, cell := range cells {
		pairs = append(pairs, fmt.Sprintf("%d %d", cell.Row, cell.Col))
	}

	return strings.Join(pairs, ", ")
}
