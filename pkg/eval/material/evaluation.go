package eval

import (
	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

// Material weights match the piece-square evaluator so both agree on exchanges.
var pieceValues = [...]int{common.Pawn: 100, common.Knight: 320, common.Bishop: 328, common.Rook: 500, common.Queen: 900}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *common.Position) int {
	var eval = 0
	for piece := common.Pawn; piece <= common.Queen; piece++ {
		eval += pieceValues[piece] *
			(common.PopCount(p.Pieces(common.SideWhite, piece)) -
				common.PopCount(p.Pieces(common.SideBlack, piece)))
	}
	if p.SideToMove() == common.SideBlack {
		eval = -eval
	}
	return eval
}
