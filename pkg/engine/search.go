package engine

import (
	"errors"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

// errSearchTimeout unwinds the search. A score returned together with it means nothing.
var errSearchTimeout = errors.New("search timeout")

// main search method
func (t *thread) alphaBeta(alpha, beta, depth, height int) (int, error) {
	if t.engine.timeManager.IsDone() {
		return 0, errSearchTimeout
	}
	t.clearPV(height)

	var rootNode = height == 0
	var position = t.position

	if position.IsInCheckmate() {
		return lossIn(height), nil
	}
	if position.IsDraw() {
		return valueDraw, nil
	}
	if height >= maxHeight {
		return t.evaluator.Evaluate(position), nil
	}

	// transposition table
	var key = position.Key()
	var ttDepth, ttValue, ttBound, ttMove, ttHit = t.engine.transTable.Read(key)
	// the root always searches, its entry only orders moves
	if ttHit && !rootNode && ttDepth >= depth {
		ttValue = valueFromTT(ttValue, height)
		if ttBound == boundExact {
			return ttValue, nil
		}
		if ttBound == boundLower && ttValue >= beta {
			return beta, nil
		}
		if ttBound == boundUpper && ttValue <= alpha {
			return alpha, nil
		}
	}

	if depth <= 0 {
		return t.quiescence(alpha, beta, height)
	}

	if rootNode {
		ttMove = t.rootMove
	}
	var mi = moveIterator{
		position:  position,
		buffer:    t.stack[height].moveList[:],
		transMove: ttMove,
	}
	mi.Init(false)

	var oldAlpha = alpha
	var bestMove = ttMove
	for {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		t.makeMove(move)
		var score, err = t.alphaBeta(-beta, -alpha, depth-1, height+1)
		t.unmakeMove()
		if err != nil {
			return 0, err
		}
		if t.engine.timeManager.IsDone() {
			return 0, errSearchTimeout
		}
		score = -score
		if score >= beta {
			t.engine.transTable.Update(key, depth, valueToTT(beta, height), boundLower, move)
			return beta, nil
		}
		if score > alpha {
			alpha = score
			bestMove = move
			t.assignPV(height, move)
			if rootNode {
				t.rootImproved = true
				t.rootScore = score
			}
		}
	}

	var bound = boundUpper
	if alpha > oldAlpha {
		bound = boundExact
	}
	t.engine.transTable.Update(key, depth, valueToTT(alpha, height), bound, bestMove)
	return alpha, nil
}

// quiescence searches captures only until the position is quiet.
// The result always lies within [alpha, beta].
func (t *thread) quiescence(alpha, beta, height int) (int, error) {
	if t.engine.timeManager.IsDone() {
		return 0, errSearchTimeout
	}
	t.clearPV(height)
	var position = t.position

	var eval = t.evaluator.Evaluate(position)
	if eval >= beta {
		return beta, nil
	}
	if eval > alpha {
		alpha = eval
	}
	if height >= maxHeight {
		return alpha, nil
	}

	var mi = moveIterator{
		position: position,
		buffer:   t.stack[height].moveList[:],
	}
	mi.Init(true)
	for {
		var move = mi.Next()
		if move == MoveEmpty {
			break
		}
		t.makeMove(move)
		var score, err = t.quiescence(-beta, -alpha, height+1)
		t.unmakeMove()
		if err != nil {
			return 0, err
		}
		if t.engine.timeManager.IsDone() {
			return 0, errSearchTimeout
		}
		score = -score
		if score >= beta {
			return beta, nil
		}
		if score > alpha {
			alpha = score
			t.assignPV(height, move)
		}
	}
	return alpha, nil
}

func (t *thread) makeMove(move Move) {
	t.position.ApplyMove(move)
	t.nodes++
	t.engine.timeManager.OnNodesChanged(t.nodes)
}

func (t *thread) unmakeMove() {
	t.position.UndoMove()
}
