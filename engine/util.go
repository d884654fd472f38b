package engine

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the inclusive range [low, high].
func Clamp[T constraints.Integer](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// MateThreshold separates mate scores from ordinary ones. No reachable
// combination of the other terms comes near it.
const MateThreshold = CheckmateScore / 2

// IsMateScore reports whether score carries the checkmate term.
func IsMateScore(score int) bool {
	return Abs(score) >= MateThreshold
}

// RelativeScore converts a Black-positive score into the side-to-move view
// used by UCI ("score cp"): positive is good for the side to move.
func RelativeScore(score int, whiteToMove bool) int {
	if whiteToMove {
		return -score
	}
	return score
}
