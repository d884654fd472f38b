package engine

import "math/bits"

// File and region masks, little-endian rank-file mapping (a1 = bit 0).
const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080

	// d4, e4, d5, e5
	centerSquares uint64 = 0x0000001818000000
)

// FileMask returns every square on the given file (0 = a ... 7 = h).
func FileMask(file int) uint64 {
	return bitboardFileA << uint(file)
}

// PopCount returns the number of set bits in bb.
func PopCount(bb uint64) int {
	return bits.OnesCount64(bb)
}

// adjacentFilesMask is the file itself plus its neighbours.
func adjacentFilesMask(file int) uint64 {
	mask := FileMask(file)
	if file > 0 {
		mask |= FileMask(file - 1)
	}
	if file < 7 {
		mask |= FileMask(file + 1)
	}
	return mask
}

// Single-step shifts. Diagonal shifts drop the edge file first so a pawn on
// the a-file never lands on the h-file of the neighbouring rank and vice versa.
func north(bb uint64) uint64     { return bb << 8 }
func south(bb uint64) uint64     { return bb >> 8 }
func northWest(bb uint64) uint64 { return (bb &^ bitboardFileA) << 7 }
func northEast(bb uint64) uint64 { return (bb &^ bitboardFileH) << 9 }
func southWest(bb uint64) uint64 { return (bb &^ bitboardFileA) >> 9 }
func southEast(bb uint64) uint64 { return (bb &^ bitboardFileH) >> 7 }

// flipRanks mirrors a bitboard top to bottom (a1 <-> a8).
func flipRanks(bb uint64) uint64 {
	return bits.ReverseBytes64(bb)
}
