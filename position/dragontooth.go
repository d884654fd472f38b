package position

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-eval/engine"
)

// DragonBoard wraps a dragontoothmg board by value.
type DragonBoard struct {
	b dragontoothmg.Board
}

// ParseDragon reads a FEN into a dragontoothmg board. dragontoothmg panics on
// malformed input, so the panic is turned into an error here.
func ParseDragon(fen string) (db *DragonBoard, err error) {
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("dragontoothmg: parse fen %q: expected at least 4 fields", fen)
	}
	defer func() {
		if r := recover(); r != nil {
			db, err = nil, fmt.Errorf("dragontoothmg: parse fen %q: %v", fen, r)
		}
	}()
	return &DragonBoard{b: dragontoothmg.ParseFen(fen)}, nil
}

func (d *DragonBoard) side(c engine.Color) *dragontoothmg.Bitboards {
	if c == engine.White {
		return &d.b.White
	}
	return &d.b.Black
}

func (d *DragonBoard) PieceBitboard(pt engine.PieceType, c engine.Color) uint64 {
	bb := d.side(c)
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

func (d *DragonBoard) PieceCount(pt engine.PieceType, c engine.Color) int {
	return engine.PopCount(d.PieceBitboard(pt, c))
}

func (d *DragonBoard) Occupancy(c engine.Color) uint64 { return d.side(c).All }

func (d *DragonBoard) WhiteToMove() bool { return d.b.Wtomove }

func (d *DragonBoard) InCheck() bool { return d.b.OurKingInCheck() }

func (d *DragonBoard) InCheckmate() bool {
	return d.b.OurKingInCheck() && len(d.b.GenerateLegalMoves()) == 0
}

// pieceTypeAt returns the piece standing on square for one side.
func pieceTypeAt(square uint8, bb *dragontoothmg.Bitboards) (engine.PieceType, bool) {
	bit := uint64(1) << square
	switch {
	case bb.Pawns&bit != 0:
		return engine.Pawn, true
	case bb.Knights&bit != 0:
		return engine.Knight, true
	case bb.Bishops&bit != 0:
		return engine.Bishop, true
	case bb.Rooks&bit != 0:
		return engine.Rook, true
	case bb.Queens&bit != 0:
		return engine.Queen, true
	case bb.Kings&bit != 0:
		return engine.King, true
	}
	return engine.NoPieceType, false
}

// LegalMoves generates the moves of c. For the side not to move the board is
// rebuilt from its FEN with the side flipped and no en passant square.
func (d *DragonBoard) LegalMoves(c engine.Color) []engine.Move {
	fen := d.b.ToFen()
	cp := d.b
	if cp.Wtomove != (c == engine.White) {
		fen = sideFlippedFEN(fen, c)
		cp = dragontoothmg.ParseFen(fen)
	}
	us, them := &cp.White, &cp.Black
	if !cp.Wtomove {
		us, them = &cp.Black, &cp.White
	}
	ep, hasEP := enPassantTarget(fen)

	generated := cp.GenerateLegalMoves()
	moves := make([]engine.Move, 0, len(generated))
	for _, m := range generated {
		mv := engine.Move{UCI: m.String()}
		if captured, ok := pieceTypeAt(m.To(), them); ok {
			if captured == engine.King {
				continue
			}
			mv.IsCapture, mv.Captured = true, captured
		} else if hasEP && m.To() == ep && us.Pawns&(uint64(1)<<m.From()) != 0 {
			mv.IsCapture, mv.Captured = true, engine.Pawn
		}
		moves = append(moves, mv)
	}
	return moves
}

func (d *DragonBoard) Successors() []engine.Successor {
	generated := d.b.GenerateLegalMoves()
	next := make([]engine.Successor, len(generated))
	for i, m := range generated {
		cp := d.b
		cp.Apply(m)
		next[i] = engine.Successor{Move: m.String(), Position: &DragonBoard{b: cp}}
	}
	return next
}

func (d *DragonBoard) FEN() string { return d.b.ToFen() }

func (d *DragonBoard) Play(uci string) (Board, error) {
	uci = strings.ToLower(strings.TrimSpace(uci))
	for _, m := range d.b.GenerateLegalMoves() {
		if m.String() == uci {
			cp := d.b
			cp.Apply(m)
			return &DragonBoard{b: cp}, nil
		}
	}
	return nil, illegalMove(uci, d.FEN())
}
