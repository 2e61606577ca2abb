package engine

import . "github.com/ChizhovVadim/CounterLite/pkg/common"

const sortTableKeyImportant = 1_000_000

var sortPieceValues = [...]int{Empty: 0, Pawn: 100, Knight: 320, Bishop: 328, Rook: 500, Queen: 900, King: 20000}

type moveIterator struct {
	position  *Position
	buffer    []OrderedMove
	transMove Move
	count     int
	index     int
}

func (mi *moveIterator) Init(capturesOnly bool) {
	mi.count = len(mi.position.GenerateLegalMoves(mi.buffer, capturesOnly))
	mi.index = 0
	for i := 0; i < mi.count; i++ {
		var m = mi.buffer[i].Move
		var score int
		if m == mi.transMove {
			score = sortTableKeyImportant
		} else if m.IsCapture() {
			score = mvvlva(m)
		} else {
			score = 0
		}
		mi.buffer[i].Key = int32(score)
	}
}

// Next selects the best remaining move lazily, so a cutoff skips sorting the tail.
func (mi *moveIterator) Next() Move {
	if mi.index >= mi.count {
		return MoveEmpty
	}
	moveToTop(mi.buffer[mi.index:mi.count])
	var m = mi.buffer[mi.index].Move
	mi.index++
	return m
}

func mvvlva(move Move) int {
	return 10*sortPieceValues[move.CapturedPiece()] -
		sortPieceValues[move.MovingPiece()]
}

// moveToTop brings the first move with the highest key to the front.
// The moves it passes keep their relative order.
func moveToTop(ml []OrderedMove) {
	var bestIndex = 0
	for i := 1; i < len(ml); i++ {
		if ml[i].Key > ml[bestIndex].Key {
			bestIndex = i
		}
	}
	if bestIndex != 0 {
		var best = ml[bestIndex]
		copy(ml[1:bestIndex+1], ml[:bestIndex])
		ml[0] = best
	}
}
