package eval

import . "github.com/ChizhovVadim/CounterLite/pkg/common"

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns material plus piece-square bonuses from the side to move point of view.
func (e *EvaluationService) Evaluate(p *Position) int {
	var score = 0
	for piece := Pawn; piece <= King; piece++ {
		for x := p.Pieces(SideWhite, piece); x != 0; x &= x - 1 {
			score += pieceValues[piece] + pst[SideWhite][piece][FirstOne(x)]
		}
		for x := p.Pieces(SideBlack, piece); x != 0; x &= x - 1 {
			score -= pieceValues[piece] + pst[SideBlack][piece][FirstOne(x)]
		}
	}
	if p.SideToMove() == SideBlack {
		score = -score
	}
	return score
}
