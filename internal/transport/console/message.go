package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	actionMove  = "move"
	actionNew   = "new"
	actionBoard = "board"
	actionState = "state"
	actionHelp  = "help"
	actionQuit  = "quit"
)

var (
	ErrEmptyMessage  = errors.New("empty message")
	ErrBadCoordinate = errors.New("coordinates must be two integers")
)

var aliases = map[string]string{
	"m":       actionMove,
	"restart": actionNew,
	"reset":   actionNew,
	"b":       actionBoard,
	"json":    actionState,
	"h":       actionHelp,
	"?":       actionHelp,
	"exit":    actionQuit,
	"q":       actionQuit,
}

// Message - one line of console input, split into an action and its arguments.
type Message struct {
	Action string
	Args   []string
}

// parseMessage - "<row> <col>" is a shorthand for "move <row> <col>".
func parseMessage(line string) (*Message, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, ErrEmptyMessage
	}

	if _, err := strconv.Atoi(fields[0]); err == nil {
		return &Message{Action: actionMove, Args: fields}, nil
	}

	action := fields[0]
	if alias, ok := aliases[action]; ok {
		action = alias
	}

	return &Message{Action: action, Args: fields[1:]}, nil
}

func (that *Message) Coordinates() (int, int, error) {
	if len(that.Args) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d values", ErrBadCoordinate, len(that.Args))
	}

	row, err := strconv.Atoi(that.Args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrBadCoordinate, that.Args[0])
	}

	col, err := strconv.Atoi(that.Args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", ErrBadCoordinate, that.Args[1])
	}

	return row, col, nil
}
