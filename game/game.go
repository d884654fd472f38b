// Package game scores every position along the main line of a PGN game.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	chess "github.com/corentings/chess/v2"

	"chess-eval/engine"
	"chess-eval/position"
)

var log = slog.Default().With("package", "game")

var ErrEmptyPGN = errors.New("empty PGN")

// PlyScore is the evaluation of the position reached after one ply. Ply 0 is
// the starting position and has no move.
type PlyScore struct {
	Ply        int              `json:"ply"`
	MoveNumber int              `json:"moveNumber"`
	Color      string           `json:"color"`
	Move       string           `json:"move"`
	FEN        string           `json:"fen"`
	Score      int              `json:"score"`
	Mate       bool             `json:"mate"`
	Breakdown  engine.Breakdown `json:"breakdown"`
}

func (p *PlyScore) String() string {
	if p.Ply == 0 {
		return fmt.Sprintf("Start: %d", p.Score)
	}
	return fmt.Sprintf("Move %d (%s) %s: %d", p.MoveNumber, p.Color, p.Move, p.Score)
}

type Options struct {
	Backend string
}

var defaultOptions = Options{
	Backend: position.Default,
}

type Option func(*Options)

// WithBackend selects the board implementation used to evaluate positions.
func WithBackend(name string) Option {
	return func(opts *Options) {
		opts.Backend = name
	}
}

// ScoreGameStreaming parses pgn and sends one PlyScore per position on the
// main line. Both channels are closed when scoring stops; at most one error
// is sent.
func ScoreGameStreaming(ctx context.Context, pgn string, opts ...Option) (<-chan *PlyScore, <-chan error) {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	results := make(chan *PlyScore)
	errc := make(chan error, 1)

	if strings.TrimSpace(pgn) == "" {
		errc <- ErrEmptyPGN
		close(results)
		close(errc)
		return results, errc
	}

	go func() {
		defer close(results)
		defer close(errc)

		pgnOpt, err := chess.PGN(strings.NewReader(pgn))
		if err != nil {
			log.Error("Error parsing PGN", "error", err)
			errc <- fmt.Errorf("parse PGN: %w", err)
			return
		}
		g := chess.NewGame(pgnOpt)
		positions := g.Positions()
		moves := g.Moves()
		log.Debug("Game parsed", "moves", len(moves), "positions", len(positions), "outcome", g.Outcome().String())

		for i, pos := range positions {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			ply := &PlyScore{Ply: i, FEN: pos.String()}
			if i > 0 && i-1 < len(moves) {
				ply.MoveNumber = (i-1)/2 + 1
				ply.Color = "White"
				if i%2 == 0 {
					ply.Color = "Black"
				}
				ply.Move = chess.UCINotation{}.Encode(positions[i-1], moves[i-1])
			}

			board, err := position.Parse(o.Backend, ply.FEN)
			if err != nil {
				errc <- fmt.Errorf("ply %d: %w", i, err)
				return
			}
			ply.Breakdown = engine.EvaluateDetailed(board)
			ply.Score = ply.Breakdown.Total()
			ply.Mate = board.InCheckmate()

			select {
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			case results <- ply:
			}
		}
	}()

	return results, errc
}

// ScoreGame collects ScoreGameStreaming into a slice.
func ScoreGame(ctx context.Context, pgn string, opts ...Option) ([]PlyScore, error) {
	plies, errc := ScoreGameStreaming(ctx, pgn, opts...)

	results := make([]PlyScore, 0)
	for ply := range plies {
		results = append(results, *ply)
	}
	if err := <-errc; err != nil {
		return nil, err
	}
	log.Info("Game scored", "plies", len(results))
	return results, nil
}
