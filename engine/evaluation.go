package engine

import (
	"fmt"
	"strings"
)

// Breakdown holds the contribution of every evaluation term. All fields
// follow the package sign convention (positive favours Black).
type Breakdown struct {
	Material   int
	KingSafety int
	Pawns      PawnStructure
	Mobility   int
	Threats    int
	Center     int
}

// Total is the final evaluation.
func (bd Breakdown) Total() int {
	return bd.Material + bd.KingSafety + bd.Pawns.Total() + bd.Mobility + bd.Threats + bd.Center
}

func (bd Breakdown) String() string {
	var sb strings.Builder
	sb.WriteString("################### EVALUATION ###################\n")
	fmt.Fprintf(&sb, "Material:\t%d\n", bd.Material)
	fmt.Fprintf(&sb, "King safety:\t%d\n", bd.KingSafety)
	fmt.Fprintf(&sb, "Pawns:\t\t%d\t(doubled %d, isolated %d, passed %d, supported %d)\n",
		bd.Pawns.Total(), bd.Pawns.Doubled, bd.Pawns.Isolated, bd.Pawns.Passed, bd.Pawns.Supported)
	fmt.Fprintf(&sb, "Mobility:\t%d\n", bd.Mobility)
	fmt.Fprintf(&sb, "Threats:\t%d\n", bd.Threats)
	fmt.Fprintf(&sb, "Center:\t\t%d\n", bd.Center)
	fmt.Fprintf(&sb, "Total:\t\t%d (%s)\n", bd.Total(), favouredSide(bd.Total()))
	return sb.String()
}

func favouredSide(score int) string {
	switch {
	case score > 0:
		return "black better"
	case score < 0:
		return "white better"
	default:
		return "equal"
	}
}

// Evaluate returns the static score of p.
func Evaluate(p Position) int {
	return EvaluateDetailed(p).Total()
}

// EvaluateDetailed runs every term once against p and keeps the parts.
func EvaluateDetailed(p Position) Breakdown {
	wMoves := p.LegalMoves(White)
	bMoves := p.LegalMoves(Black)

	return Breakdown{
		Material:   materialScore(p),
		KingSafety: kingSafetyScore(p),
		Pawns:      pawnStructure(p),
		Mobility:   mobilityScore(wMoves, bMoves),
		Threats:    threatScore(wMoves, bMoves),
		Center:     centerControlScore(p),
	}
}
