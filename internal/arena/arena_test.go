package arena

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

const backRankMate = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

func newTestEngine() Engine {
	var options = engine.NewOptions(evalbuilder.Get("pst"))
	options.Hash = 1
	return engine.NewEngine(options)
}

func TestComputeStat(t *testing.T) {
	is := is.New(t)

	var even = computeStat(10, 10, 5)
	is.Equal(even.WinningFraction, 0.5)
	is.True(math.Abs(even.EloDifference) < 1e-9)
	is.True(math.Abs(even.LOS-0.5) < 1e-9)

	var ahead = computeStat(3, 1, 0)
	is.Equal(ahead.WinningFraction, 0.75)
	is.True(math.Abs(ahead.EloDifference-190.85) < 0.01)
	is.True(math.Abs(ahead.LOS-0.8413) < 0.001)

	var drawn = computeStat(0, 0, 4)
	is.Equal(drawn.WinningFraction, 0.5)
	is.Equal(drawn.LOS, 0.5)

	is.Equal(computeStat(0, 0, 0), Stat{})
}

func TestStatAdd(t *testing.T) {
	is := is.New(t)
	var stat Stat
	stat.add(GameResult{Result: gameResultWhiteWins, EngineAIsWhite: true})
	stat.add(GameResult{Result: gameResultWhiteWins, EngineAIsWhite: false})
	stat.add(GameResult{Result: gameResultBlackWins, EngineAIsWhite: false})
	stat.add(GameResult{Result: gameResultDraw, EngineAIsWhite: true})
	is.Equal(stat.Wins, 2)
	is.Equal(stat.Losses, 1)
	is.Equal(stat.Draws, 1)
	is.Equal(stat.WinningFraction, 0.625)
}

func TestGameResultString(t *testing.T) {
	is := is.New(t)
	is.Equal(gameResultString(gameResultWhiteWins), "1-0")
	is.Equal(gameResultString(gameResultBlackWins), "0-1")
	is.Equal(gameResultString(gameResultDraw), "1/2-1/2")
	is.Equal(gameResultString(42), "")
}

func TestOpenings(t *testing.T) {
	is := is.New(t)
	var openings = Openings()
	is.Equal(len(openings), 15)
	for _, fen := range openings {
		var _, err = NewPositionFromFEN(fen)
		is.NoErr(err)
	}
}

func TestLoadOpenings(t *testing.T) {
	is := is.New(t)
	var gameInfos = make(chan gameInfo, 4)
	var err = loadOpenings(context.Background(), []string{InitialPositionFen, backRankMate}, gameInfos)
	is.NoErr(err)
	close(gameInfos)

	var infos []gameInfo
	for info := range gameInfos {
		infos = append(infos, info)
	}
	is.Equal(len(infos), 4)
	var ids = make(map[string]bool)
	for i, info := range infos {
		is.Equal(info.gameNumber, i+1)
		is.Equal(info.engineAIsWhite, i%2 == 0)
		ids[info.id] = true
	}
	is.Equal(len(ids), 4)
	is.Equal(infos[2].opening, backRankMate)

	err = loadOpenings(context.Background(), []string{"not a fen"}, make(chan gameInfo, 2))
	is.True(err != nil)
}

func TestPlayGameCheckmate(t *testing.T) {
	is := is.New(t)
	var info = gameInfo{id: "test", opening: backRankMate, engineAIsWhite: true, gameNumber: 1}
	var res, err = playGame(context.Background(), zerolog.Nop(),
		newTestEngine(), newTestEngine(),
		TimeControl{FixedTime: 200 * time.Millisecond}, info)
	is.NoErr(err)
	is.Equal(res.Result, gameResultWhiteWins)
	is.Equal(res.Comment, "Checkmate")
	is.Equal(len(res.Moves), 1)
	is.Equal(res.Moves[0].String(), "a1a8")
	is.True(strings.Contains(res.PGN, "1-0"))
}

func TestPlayGameMaxPlies(t *testing.T) {
	is := is.New(t)
	var info = gameInfo{id: "test", opening: InitialPositionFen, engineAIsWhite: false, gameNumber: 2}
	var res, err = playGame(context.Background(), zerolog.Nop(),
		newTestEngine(), newTestEngine(),
		TimeControl{FixedNodes: 5000, MaxPlies: 4}, info)
	is.NoErr(err)
	is.Equal(res.Result, gameResultDraw)
	is.Equal(res.Comment, "max plies")
	is.Equal(len(res.Moves), 4)
}

func TestPlayGameCancelled(t *testing.T) {
	is := is.New(t)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var info = gameInfo{id: "test", opening: InitialPositionFen, engineAIsWhite: true, gameNumber: 1}
	var _, err = playGame(ctx, zerolog.Nop(), newTestEngine(), newTestEngine(),
		TimeControl{FixedNodes: 1000}, info)
	is.Equal(err, context.Canceled)
}

func TestArenaRun(t *testing.T) {
	is := is.New(t)
	var finished int
	var arena = &Arena{
		Logger:         zerolog.Nop(),
		Concurrency:    2,
		TimeControl:    TimeControl{FixedTime: 200 * time.Millisecond},
		Openings:       []string{backRankMate},
		NewEngineA:     newTestEngine,
		NewEngineB:     newTestEngine,
		OnGameFinished: func(GameResult) { finished++ },
	}
	var stat, err = arena.Run(context.Background())
	is.NoErr(err)
	is.Equal(finished, 2)
	// White mates in one in both games, so each engine wins once.
	is.Equal(stat.Wins, 1)
	is.Equal(stat.Losses, 1)
	is.Equal(stat.Draws, 0)
}
