package engine

// Sign convention: every score in this package is from Black's point of view.
// Positive favours Black, negative favours White. Each term adds Black's
// share and subtracts White's, never the other way round.

// Piece values in centipawns. The king is never counted as material; its
// value doubles as the checkmate score.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 325
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 10000
)

// PieceValue is indexed by PieceType.
var PieceValue = [7]int{
	NoPieceType: 0,
	Pawn:        PawnValue,
	Knight:      KnightValue,
	Bishop:      BishopValue,
	Rook:        RookValue,
	Queen:       QueenValue,
	King:        KingValue,
}

// Term weights.
const (
	CheckBonus     = 50
	CheckmateScore = KingValue

	DoubledPawnPenalty  = 10
	IsolatedPawnPenalty = 20
	PassedPawnBonus     = 30
	SupportedPawnBonus  = 15

	MobilityWeight = 10
	CenterWeight   = 20
)
