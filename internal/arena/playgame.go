package arena

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

var errNoMove = errors.New("engine returned no move")

// playGame plays one game from info.opening. The engines only ever see a
// Position; the notnil game referees legality and adjudicates the result.
func playGame(
	ctx context.Context,
	logger zerolog.Logger,
	engineA, engineB Engine,
	tc TimeControl,
	info gameInfo,
) (GameResult, error) {
	logger.Debug().
		Str("id", info.id).
		Int("game", info.gameNumber).
		Msg("game started")

	engineA.Clear()
	engineB.Clear()

	var pos, err = NewPositionFromFEN(info.opening)
	if err != nil {
		return GameResult{}, err
	}
	fenOption, err := chess.FEN(info.opening)
	if err != nil {
		return GameResult{}, err
	}
	var game = chess.NewGame(fenOption)
	game.AddTagPair("Event", "arena")
	game.AddTagPair("Round", fmt.Sprint(info.gameNumber))
	game.AddTagPair("FEN", info.opening)
	game.AddTagPair("SetUp", "1")
	if info.engineAIsWhite {
		game.AddTagPair("White", "A")
		game.AddTagPair("Black", "B")
	} else {
		game.AddTagPair("White", "B")
		game.AddTagPair("Black", "A")
	}

	var limits = tc.limits()
	var moves []Move
	var comment string

	for {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		claimDraw(game)
		if game.Outcome() != chess.NoOutcome {
			comment = methodName(game.Method())
			break
		}
		if tc.MaxPlies != 0 && len(moves) >= tc.MaxPlies {
			if err := game.Draw(chess.DrawOffer); err != nil {
				return GameResult{}, err
			}
			comment = "max plies"
			break
		}

		var eng Engine
		if (pos.SideToMove() == SideWhite) == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var si = eng.Search(ctx, SearchParams{
			Position: pos,
			Limits:   limits,
		})
		if len(si.MainLine) == 0 {
			return GameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, errNoMove)
		}
		var move = si.MainLine[0]
		refereeMove, err := chess.UCINotation{}.Decode(game.Position(), move.String())
		if err != nil {
			return GameResult{}, fmt.Errorf("game %v: bad move %v: %w", info.gameNumber, move, err)
		}
		if err := game.Move(refereeMove); err != nil {
			return GameResult{}, fmt.Errorf("game %v: bad move %v: %w", info.gameNumber, move, err)
		}
		if !pos.MakeMoveLAN(move.String()) {
			return GameResult{}, fmt.Errorf("game %v: bad move %v", info.gameNumber, move)
		}
		moves = append(moves, move)
	}

	return GameResult{
		ID:             info.id,
		GameNumber:     info.gameNumber,
		EngineAIsWhite: info.engineAIsWhite,
		Result:         outcomeToResult(game.Outcome()),
		Comment:        comment,
		Moves:          moves,
		PGN:            game.String(),
	}, nil
}

// claimDraw claims repetition or fifty-move draws as soon as they are available.
func claimDraw(game *chess.Game) {
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition || method == chess.FiftyMoveRule {
			if game.Draw(method) == nil {
				return
			}
		}
	}
}

func methodName(method chess.Method) string {
	switch method {
	case chess.Checkmate:
		return "Checkmate"
	case chess.Stalemate:
		return "Stalemate"
	case chess.ThreefoldRepetition, chess.FivefoldRepetition:
		return "Repetition"
	case chess.FiftyMoveRule, chess.SeventyFiveMoveRule:
		return "Fifty moves"
	case chess.InsufficientMaterial:
		return "Insufficient material"
	case chess.Resignation:
		return "Resignation"
	case chess.DrawOffer:
		return "Draw offer"
	}
	return ""
}

func outcomeToResult(outcome chess.Outcome) int {
	switch outcome {
	case chess.WhiteWon:
		return gameResultWhiteWins
	case chess.BlackWon:
		return gameResultBlackWins
	default:
		return gameResultDraw
	}
}

func (tc TimeControl) limits() LimitsType {
	var limits LimitsType
	if tc.FixedNodes != 0 {
		limits.Nodes = tc.FixedNodes
	} else if tc.FixedTime != 0 {
		limits.MoveTime = int(tc.FixedTime / time.Millisecond)
	} else {
		limits.Depth = 1
	}
	return limits
}
