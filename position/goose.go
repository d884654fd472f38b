package position

import (
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-eval/engine"
)

// GooseBoard wraps a goosemg board. It holds the board by value so every
// successor is an independent copy.
type GooseBoard struct {
	b gm.Board
}

// ParseGoose reads a FEN into a goosemg board.
func ParseGoose(fen string) (*GooseBoard, error) {
	b, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goosemg: parse fen %q: %w", fen, err)
	}
	return &GooseBoard{b: *b}, nil
}

func (g *GooseBoard) PieceBitboard(pt engine.PieceType, c engine.Color) uint64 {
	bb := g.b.Bitboards(gm.Color(c))
	switch pt {
	case engine.Pawn:
		return bb.Pawns
	case engine.Knight:
		return bb.Knights
	case engine.Bishop:
		return bb.Bishops
	case engine.Rook:
		return bb.Rooks
	case engine.Queen:
		return bb.Queens
	case engine.King:
		return bb.Kings
	}
	return 0
}

func (g *GooseBoard) PieceCount(pt engine.PieceType, c engine.Color) int {
	return engine.PopCount(g.PieceBitboard(pt, c))
}

func (g *GooseBoard) Occupancy(c engine.Color) uint64 { return g.b.ColorOccupancy(gm.Color(c)) }

func (g *GooseBoard) WhiteToMove() bool { return g.b.SideToMove() == gm.White }

func (g *GooseBoard) InCheck() bool { return g.b.InCheck(g.b.SideToMove()) }

func (g *GooseBoard) InCheckmate() bool { return g.b.InCheckmate() }

// LegalMoves generates the moves of c. For the side not to move the board is
// rebuilt from its FEN with the side flipped and no en passant square.
func (g *GooseBoard) LegalMoves(c engine.Color) []engine.Move {
	b := &g.b
	if g.b.SideToMove() != gm.Color(c) {
		flipped, err := gm.ParseFEN(sideFlippedFEN(g.b.ToFEN(), c))
		if err != nil {
			panic(fmt.Errorf("goosemg: reparse own fen: %w", err))
		}
		b = flipped
	}
	generated := b.GenerateMoves()
	moves := make([]engine.Move, 0, len(generated))
	for _, m := range generated {
		captured := m.CapturedPiece()
		if captured.Type() == gm.PieceTypeKing {
			// Only possible when c is not the side to move and gives check.
			continue
		}
		moves = append(moves, engine.Move{
			UCI:       m.String(),
			IsCapture: captured != gm.NoPiece,
			Captured:  engine.PieceType(captured.Type()),
		})
	}
	return moves
}

func (g *GooseBoard) Successors() []engine.Successor {
	generated := g.b.GenerateMoves()
	next := make([]engine.Successor, 0, len(generated))
	for _, m := range generated {
		cp := g.b
		if ok, _ := cp.MakeMove(m); !ok {
			continue
		}
		next = append(next, engine.Successor{Move: m.String(), Position: &GooseBoard{b: cp}})
	}
	return next
}

func (g *GooseBoard) FEN() string { return g.b.ToFEN() }

func (g *GooseBoard) Play(uci string) (Board, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	legal := g.b.GenerateMoves()
	for _, m := range legal {
		if m.String() == uci {
			return g.apply(m, uci)
		}
	}
	// Promotion letters and flags may be spelled differently; fall back to
	// matching squares and promotion type.
	parsed, err := gm.ParseMove(uci)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", illegalMove(uci, g.FEN()), err)
	}
	for _, m := range legal {
		if m.From() == parsed.From() && m.To() == parsed.To() && m.PromotionPieceType() == parsed.PromotionPieceType() {
			return g.apply(m, uci)
		}
	}
	return nil, illegalMove(uci, g.FEN())
}

func (g *GooseBoard) apply(m gm.Move, uci string) (Board, error) {
	cp := g.b
	if ok, _ := cp.MakeMove(m); !ok {
		return nil, illegalMove(uci, g.FEN())
	}
	return &GooseBoard{b: cp}, nil
}
