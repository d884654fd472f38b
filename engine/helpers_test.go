package engine

import (
	"strings"
	"testing"
)

func square(coord string) int {
	if len(coord) != 2 {
		panic("invalid coordinate")
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	return rank*8 + file
}

func squares(coords ...string) (bb uint64) {
	for _, c := range coords {
		bb |= uint64(1) << uint(square(c))
	}
	return bb
}

var pieceFromChar = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// snapshotFromFEN reads the placement and side-to-move fields of a FEN.
// Move lists and check flags are left for the test to fill in.
func snapshotFromFEN(t *testing.T, fen string) *Snapshot {
	t.Helper()
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		t.Fatalf("FEN %q needs placement and side to move", fen)
	}
	s := &Snapshot{SideToMove: White}
	if fields[1] == "b" {
		s.SideToMove = Black
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		t.Fatalf("FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			} else {
				ch += 'a' - 'A'
			}
			pt, ok := pieceFromChar[ch]
			if !ok {
				t.Fatalf("FEN %q: unknown piece %q", fen, row[j])
			}
			s.SetPiece(pt, color, rank*8+file)
			file++
		}
	}
	return s
}

func quietMoves(n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = Move{UCI: "a1a2"}
	}
	return moves
}
