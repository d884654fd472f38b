package engine

// Color identifies a side. The numbering matches the board backends (White = 0).
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. Values line up with both goosemg and
// dragontoothmg so adapters can convert with a plain cast.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// pieceList enumerates the six piece kinds in table order.
var pieceList = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

var pieceNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if int(pt) < len(pieceNames) {
		return pieceNames[pt]
	}
	return "invalid"
}

// Move is the part of a legal move the evaluator needs.
type Move struct {
	UCI       string
	IsCapture bool
	Captured  PieceType
}

// Position is a read-only view of one board state. Implementations must not
// change while an evaluation is running.
type Position interface {
	// PieceCount returns how many pieces of the kind the side has.
	PieceCount(pt PieceType, c Color) int
	// PieceBitboard returns the occupancy of one kind for one side, a1 = bit 0.
	PieceBitboard(pt PieceType, c Color) uint64
	// Occupancy returns every square the side occupies.
	Occupancy(c Color) uint64
	WhiteToMove() bool
	// InCheck and InCheckmate refer to the side to move.
	InCheck() bool
	InCheckmate() bool
	// LegalMoves lists the moves the side could play from this position,
	// whether or not it is that side's turn.
	LegalMoves(c Color) []Move
}
