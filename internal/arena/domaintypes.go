package arena

import (
	"context"
	"time"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type Engine interface {
	Clear()
	Search(ctx context.Context, searchParams SearchParams) SearchInfo
}

// TimeControl limits every move of a game. FixedNodes wins over FixedTime.
type TimeControl struct {
	FixedNodes int
	FixedTime  time.Duration
	MaxPlies   int
}

type gameInfo struct {
	id             string
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type GameResult struct {
	ID             string
	GameNumber     int
	EngineAIsWhite bool
	Result         int
	Comment        string
	Moves          []Move
	PGN            string
}

type Stat struct {
	Wins, Losses, Draws int
	WinningFraction     float64
	EloDifference       float64
	LOS                 float64
}
