package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"
)

// Kind distinguishes the referee protocol commands of §6.2.
type Kind int

const (
	Unknown Kind = iota
	Version
	Identify
	Move
	Quit
)

// Command is one parsed line of referee protocol input.
type Command struct {
	Kind Kind
	Raw  string

	// Version is the requested protocol version, for Version commands.
	Version int

	// Board, for Move commands, is the board text (§6.1) with the trailing
	// time/win-length tags already stripped off.
	Board string
	// PerMove and Remaining are the optional "time <D>" and
	// "time-remaining <D>" budgets; zero if absent.
	PerMove, Remaining time.Duration
	// WinLength overrides the board's default win length; zero if absent.
	WinLength int
}

// ParseCommand tokenizes and classifies one line of referee protocol input.
// Tokenizing uses shell-word splitting (quoting is never required by the
// protocol's own grammar, but it tolerates it harmlessly and gives us a
// single well-tested splitter for every command shape).
func ParseCommand(line string) (Command, error) {
	raw := line
	fields, err := shellquote.Split(line)
	if err != nil || len(fields) == 0 {
		return Command{Kind: Unknown, Raw: raw}, fmt.Errorf("cannot tokenize: %q", raw)
	}

	switch fields[0] {
	case "st3p":
		if len(fields) != 3 || fields[1] != "version" {
			return Command{Kind: Unknown, Raw: raw}, fmt.Errorf("malformed st3p command: %q", raw)
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{Kind: Unknown, Raw: raw}, fmt.Errorf("invalid version in %q: %w", raw, err)
		}
		return Command{Kind: Version, Raw: raw, Version: n}, nil

	case "identify":
		return Command{Kind: Identify, Raw: raw}, nil

	case "quit":
		return Command{Kind: Quit, Raw: raw}, nil

	case "move":
		return parseMove(raw, fields[1:])

	default:
		return Command{Kind: Unknown, Raw: raw}, fmt.Errorf("unrecognized command: %q", raw)
	}
}

// parseMove handles "move <board-fields...> [time <D>] [time-remaining <D>]
// [win-length <k>]". The board itself is the row-group field plus the side
// tag, both consumed as plain tokens; everything after is tag/value pairs.
func parseMove(raw string, fields []string) (Command, error) {
	if len(fields) < 2 {
		return Command{Kind: Unknown, Raw: raw}, fmt.Errorf("move command missing board: %q", raw)
	}

	cmd := Command{Kind: Move, Raw: raw, Board: fields[0] + " " + fields[1]}

	rest := fields[2:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "time", "time-remaining":
			if i+1 >= len(rest) {
				return Command{}, fmt.Errorf("%v missing argument: %q", rest[i], raw)
			}
			d, err := parseDuration(rest[i+1])
			if err != nil {
				return Command{}, fmt.Errorf("invalid %v in %q: %w", rest[i], raw, err)
			}
			if rest[i] == "time" {
				cmd.PerMove = d
			} else {
				cmd.Remaining = d
			}
			i++

		case "win-length":
			if i+1 >= len(rest) {
				return Command{}, fmt.Errorf("win-length missing argument: %q", raw)
			}
			n, err := strconv.Atoi(rest[i+1])
			if err != nil || n < 1 {
				return Command{}, fmt.Errorf("invalid win-length in %q: %w", raw, err)
			}
			cmd.WinLength = n
			i++

		default:
			return Command{}, fmt.Errorf("unrecognized move tag %q: %q", rest[i], raw)
		}
	}

	return cmd, nil
}

// parseDuration parses the "ms:<u64>" form of §6.2's <D>.
func parseDuration(s string) (time.Duration, error) {
	ms, ok := strings.CutPrefix(s, "ms:")
	if !ok {
		return 0, fmt.Errorf("expected ms:<n>, got %q", s)
	}
	n, err := strconv.ParseUint(ms, 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
