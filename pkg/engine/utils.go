package engine

import (
	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

// Scores are centipawns for the side to move. A forced mate scores
// valueMate minus the distance in plies from the root.
const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return height - valueMate
}

// mateShift moves a mate score plies further from the mated side.
// Ordinary scores are returned unchanged.
func mateShift(v, plies int) int {
	switch {
	case v >= valueWin:
		return v + plies
	case v <= valueLoss:
		return v - plies
	}
	return v
}

// TT entries keep mate distances relative to their own node.
func valueToTT(v, height int) int {
	return mateShift(v, height)
}

func valueFromTT(v, height int) int {
	return mateShift(v, -height)
}

// newUciScore converts plies to full moves, negative when the side to move is mated.
func newUciScore(v int) UciScore {
	switch {
	case v >= valueWin:
		var plies = valueMate - v
		return UciScore{Mate: (plies + 1) / 2}
	case v <= valueLoss:
		var plies = v + valueMate
		return UciScore{Mate: -(plies / 2)}
	}
	return UciScore{Centipawns: v}
}
