package engine

// mobilityScore compares how many legal moves each side has, regardless of
// whose turn it is.
func mobilityScore(wMoves, bMoves []Move) int {
	return (len(bMoves) - len(wMoves)) * MobilityWeight
}

// threatScore values every capture a side has available. It does not
// play the captures.
func threatScore(wMoves, bMoves []Move) (score int) {
	for _, m := range wMoves {
		if m.IsCapture {
			score -= PieceValue[m.Captured]
		}
	}
	for _, m := range bMoves {
		if m.IsCapture {
			score += PieceValue[m.Captured]
		}
	}
	return score
}
