package engine

// Successor pairs a legal move with the position it leads to.
type Successor struct {
	Move     string
	Position Position
}

// Expander is a Position that can list the positions reachable in one move
// by the side to move.
type Expander interface {
	Position
	Successors() []Successor
}

// SelectMove evaluates every successor of x and returns the best one for the
// side to move: White wants the lowest score, Black the highest. The first
// move wins ties. ok is false when there is no legal move.
func SelectMove(x Expander) (best Successor, score int, ok bool) {
	whiteToMove := x.WhiteToMove()
	for _, next := range x.Successors() {
		s := Evaluate(next.Position)
		if !ok || (whiteToMove && s < score) || (!whiteToMove && s > score) {
			best, score, ok = next, s, true
		}
	}
	return best, score, ok
}
