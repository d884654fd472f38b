package engine

// Snapshot is a plain-data Position. It owns its bitboards and move lists,
// so a frozen copy can be evaluated from any goroutine.
type Snapshot struct {
	// Pieces[color][pieceType] is the occupancy of that group.
	Pieces     [2][7]uint64
	SideToMove Color
	Check      bool
	Checkmate  bool
	// Moves[color] are the legal moves of that side from this position.
	Moves [2][]Move
}

// Freeze copies any Position into a Snapshot.
func Freeze(p Position) *Snapshot {
	s := &Snapshot{
		SideToMove: Black,
		Check:      p.InCheck(),
		Checkmate:  p.InCheckmate(),
	}
	if p.WhiteToMove() {
		s.SideToMove = White
	}
	for _, c := range [2]Color{White, Black} {
		for _, pt := range pieceList {
			s.Pieces[c][pt] = p.PieceBitboard(pt, c)
		}
		src := p.LegalMoves(c)
		s.Moves[c] = append(make([]Move, 0, len(src)), src...)
	}
	return s
}

// SetPiece places a piece of the given kind and side on sq (0 = a1).
func (s *Snapshot) SetPiece(pt PieceType, c Color, sq int) *Snapshot {
	s.Pieces[c][pt] |= uint64(1) << uint(sq)
	return s
}

func (s *Snapshot) PieceCount(pt PieceType, c Color) int { return PopCount(s.Pieces[c][pt]) }

func (s *Snapshot) PieceBitboard(pt PieceType, c Color) uint64 { return s.Pieces[c][pt] }

func (s *Snapshot) Occupancy(c Color) (occ uint64) {
	for _, pt := range pieceList {
		occ |= s.Pieces[c][pt]
	}
	return occ
}

func (s *Snapshot) WhiteToMove() bool { return s.SideToMove == White }

func (s *Snapshot) InCheck() bool { return s.Check }

func (s *Snapshot) InCheckmate() bool { return s.Checkmate }

func (s *Snapshot) LegalMoves(c Color) []Move { return s.Moves[c] }

// Mirror returns the colour-swapped counterpart of s: every piece changes
// side and is reflected across the middle of the board, the side to move
// flips and the move lists trade places. Evaluate(s.Mirror()) == -Evaluate(s).
func (s *Snapshot) Mirror() *Snapshot {
	m := &Snapshot{
		SideToMove: s.SideToMove.Other(),
		Check:      s.Check,
		Checkmate:  s.Checkmate,
	}
	for _, c := range [2]Color{White, Black} {
		for _, pt := range pieceList {
			m.Pieces[c.Other()][pt] = flipRanks(s.Pieces[c][pt])
		}
		moves := make([]Move, len(s.Moves[c]))
		for i, mv := range s.Moves[c] {
			mv.UCI = mirrorUCI(mv.UCI)
			moves[i] = mv
		}
		m.Moves[c.Other()] = moves
	}
	return m
}

// mirrorUCI reflects the ranks of a coordinate move, e2e4 -> e7e5.
func mirrorUCI(uci string) string {
	if len(uci) < 4 {
		return uci
	}
	b := []byte(uci)
	for _, i := range [2]int{1, 3} {
		if b[i] >= '1' && b[i] <= '8' {
			b[i] = '1' + '8' - b[i]
		}
	}
	return string(b)
}
