// Package position adapts third-party board implementations to the
// engine.Position interface.
package position

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"chess-eval/engine"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Backend names accepted by Parse.
const (
	Goose       = "goose"
	Dragontooth = "dragontooth"
	Default     = Goose
)

var (
	ErrUnknownBackend = errors.New("unknown board backend")
	ErrIllegalMove    = errors.New("illegal move")
)

// Board is a position that can also be advanced and printed.
type Board interface {
	engine.Expander
	FEN() string
	// Play returns the position after the UCI move; the receiver is unchanged.
	Play(uci string) (Board, error)
}

var parsers = map[string]func(fen string) (Board, error){
	Goose:       func(fen string) (Board, error) { return ParseGoose(fen) },
	Dragontooth: func(fen string) (Board, error) { return ParseDragon(fen) },
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads fen with the named backend. An empty name selects Default.
func Parse(backend, fen string) (Board, error) {
	if backend == "" {
		backend = Default
	}
	parse, ok := parsers[strings.ToLower(backend)]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
	return parse(strings.TrimSpace(fen))
}

// MustParse is Parse for FENs known to be valid. It panics on error.
func MustParse(backend, fen string) Board {
	b, err := Parse(backend, fen)
	if err != nil {
		panic(err)
	}
	return b
}

// PlayMoves applies a UCI move sequence in order.
func PlayMoves(b Board, moves ...string) (Board, error) {
	for _, mv := range moves {
		next, err := b.Play(mv)
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}

// sideFlippedFEN rewrites fen so that c is to move. The en passant field
// belongs to the real mover and is cleared whenever the side changes.
func sideFlippedFEN(fen string, c engine.Color) string {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fen
	}
	side := "w"
	if c == engine.Black {
		side = "b"
	}
	if fields[1] != side {
		fields[1], fields[3] = side, "-"
	}
	return strings.Join(fields, " ")
}

// enPassantTarget returns the square index (a1 = 0) of the en passant field
// of fen, if any.
func enPassantTarget(fen string) (uint8, bool) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields[3]) != 2 {
		return 0, false
	}
	file, rank := fields[3][0], fields[3][1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return (rank-'1')*8 + (file - 'a'), true
}

func illegalMove(uci, fen string) error {
	return fmt.Errorf("%w %s in %s", ErrIllegalMove, uci, fen)
}
