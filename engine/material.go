package engine

// materialScore sums piece values over the twelve piece groups. Kings are skipped.
func materialScore(p Position) (score int) {
	for _, pt := range pieceList {
		if pt == King {
			continue
		}
		score += PieceValue[pt] * p.PieceCount(pt, Black)
		score -= PieceValue[pt] * p.PieceCount(pt, White)
	}
	return score
}
