package engine

// kingSafetyScore rewards the side giving check or mate. Mate implies check,
// so a mated position collects both adjustments.
func kingSafetyScore(p Position) (score int) {
	sign := 1
	if !p.WhiteToMove() {
		sign = -1
	}
	if p.InCheck() {
		score += sign * CheckBonus
	}
	if p.InCheckmate() {
		score += sign * CheckmateScore
	}
	return score
}
