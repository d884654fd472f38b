package engine

// PawnStructure is the pawn term split into its four rules.
type PawnStructure struct {
	Doubled   int
	Isolated  int
	Passed    int
	Supported int
}

// Total returns the sum of the pawn rules.
func (ps PawnStructure) Total() int {
	return ps.Doubled + ps.Isolated + ps.Passed + ps.Supported
}

func pawnStructure(p Position) PawnStructure {
	wPawns := p.PieceBitboard(Pawn, White)
	bPawns := p.PieceBitboard(Pawn, Black)

	wPassed, bPassed := passedPawns(wPawns, bPawns)
	wSupported, bSupported := supportedPawns(wPawns, bPawns)

	// Passed and Supported count White's pawns as positive, opposite to the
	// Black-positive convention of the other terms. This is intended.
	return PawnStructure{
		Doubled:   pawnDoublingPenalties(wPawns, bPawns),
		Isolated:  isolatedPawnPenalties(wPawns, bPawns),
		Passed:    (PopCount(wPassed) - PopCount(bPassed)) * PassedPawnBonus,
		Supported: (PopCount(wSupported) - PopCount(bSupported)) * SupportedPawnBonus,
	}
}

// pawnDoublingPenalties charges each extra pawn stacked on a file.
func pawnDoublingPenalties(wPawns, bPawns uint64) (score int) {
	for file := 0; file < 8; file++ {
		currFile := FileMask(file)
		if n := PopCount(wPawns & currFile); n > 1 {
			score += DoubledPawnPenalty * (n - 1)
		}
		if n := PopCount(bPawns & currFile); n > 1 {
			score -= DoubledPawnPenalty * (n - 1)
		}
	}
	return score
}

// isolatedPawnPenalties sweeps the files and charges a side once for every
// file whose three-file band holds none of its pawns. The test is per file,
// not per pawn: a file with no pawn of either colour can still be charged.
func isolatedPawnPenalties(wPawns, bPawns uint64) (score int) {
	for file := 0; file < 8; file++ {
		band := adjacentFilesMask(file)
		if wPawns&band == 0 {
			score += IsolatedPawnPenalty
		}
		if bPawns&band == 0 {
			score -= IsolatedPawnPenalty
		}
	}
	return score
}

// passedPawns returns the pawns with no enemy pawn directly or diagonally in
// front of them, one rank ahead.
func passedPawns(wPawns, bPawns uint64) (wPassed, bPassed uint64) {
	wPassed = wPawns &^ (south(bPawns) | southEast(bPawns) | southWest(bPawns))
	bPassed = bPawns &^ (north(wPawns) | northWest(wPawns) | northEast(wPawns))
	return wPassed, bPassed
}

// supportedPawns returns the pawns with a friendly pawn directly or
// diagonally behind them.
func supportedPawns(wPawns, bPawns uint64) (wSupported, bSupported uint64) {
	wSupported = wPawns & (north(wPawns) | northWest(wPawns) | northEast(wPawns))
	bSupported = bPawns & (south(bPawns) | southEast(bPawns) | southWest(bPawns))
	return wSupported, bSupported
}
