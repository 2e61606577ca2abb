package arena

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Arena plays every opening twice between two engine factories and
// reports the match statistics for engine A.
type Arena struct {
	Logger         zerolog.Logger
	Concurrency    int
	TimeControl    TimeControl
	Openings       []string
	NewEngineA     func() Engine
	NewEngineB     func() Engine
	OnGameFinished func(GameResult)
}

func (a *Arena) Run(ctx context.Context) (Stat, error) {
	var logger = a.Logger
	logger.Info().
		Int("NumCPU", runtime.NumCPU()).
		Int("GOMAXPROCS", runtime.GOMAXPROCS(0)).
		Int("concurrency", a.Concurrency).
		Int("openings", len(a.Openings)).
		Int("fixedNodes", a.TimeControl.FixedNodes).
		Dur("fixedTime", a.TimeControl.FixedTime).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan GameResult)
	var stat Stat

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, a.Openings, gameInfos)
	})

	g.Go(func() error {
		stat = a.showResults(gameResults)
		return nil
	})

	var wg = &sync.WaitGroup{}
	var concurrency = a.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	logger.Info().Err(err).Msg("arena finished")
	return stat, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- GameResult,
) error {
	var engineA = a.NewEngineA()
	var engineB = a.NewEngineB()
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, a.Logger, engineA, engineB, a.TimeControl, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func (a *Arena) showResults(gameResults <-chan GameResult) Stat {
	var stat Stat
	var games int
	for gameResult := range gameResults {
		games++
		stat.add(gameResult)
		a.Logger.Info().
			Str("id", gameResult.ID).
			Int("game", gameResult.GameNumber).
			Str("result", gameResultString(gameResult.Result)).
			Str("comment", gameResult.Comment).
			Int("plies", len(gameResult.Moves)).
			Msg("game finished")
		a.Logger.Info().
			Int("wins", stat.Wins).
			Int("losses", stat.Losses).
			Int("draws", stat.Draws).
			Int("games", games).
			Float64("score", stat.WinningFraction).
			Float64("elo", stat.EloDifference).
			Float64("los", stat.LOS).
			Msg("match score")
		if a.OnGameFinished != nil {
			a.OnGameFinished(gameResult)
		}
	}
	return stat
}
