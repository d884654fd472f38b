package engine

// centerControlScore counts pieces of any kind standing on d4, e4, d5 and e5.
func centerControlScore(p Position) int {
	bCount := PopCount(p.Occupancy(Black) & centerSquares)
	wCount := PopCount(p.Occupancy(White) & centerSquares)
	return (bCount - wCount) * CenterWeight
}
