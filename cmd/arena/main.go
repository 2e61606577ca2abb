package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/internal/arena"
	"github.com/ChizhovVadim/CounterLite/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

type Config struct {
	Concurrency int
	EvalA       string
	EvalB       string
	Hash        int
	MoveTime    time.Duration
	Nodes       int
	MaxPlies    int
	PgnPath     string
}

var config Config

func main() {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "number of games played in parallel")
	flag.StringVar(&config.EvalA, "evala", "pst", "evaluation function of engine A")
	flag.StringVar(&config.EvalB, "evalb", "material", "evaluation function of engine B")
	flag.IntVar(&config.Hash, "hash", 16, "transposition table size in MB per engine")
	flag.DurationVar(&config.MoveTime, "movetime", 100*time.Millisecond, "search time per move")
	flag.IntVar(&config.Nodes, "nodes", 0, "node limit per move, overrides movetime")
	flag.IntVar(&config.MaxPlies, "maxplies", 400, "adjudicate a draw after this many plies")
	flag.StringVar(&config.PgnPath, "pgn", "", "write finished games to this PGN file")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("arena failed")
	}
}

func run(logger zerolog.Logger) error {
	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var onGameFinished func(arena.GameResult)
	if config.PgnPath != "" {
		var file, err = os.Create(config.PgnPath)
		if err != nil {
			return err
		}
		defer file.Close()
		onGameFinished = func(r arena.GameResult) {
			if _, err := file.WriteString(r.PGN + "\n\n"); err != nil {
				logger.Error().Err(err).Msg("write pgn failed")
			}
		}
	}

	var a = &arena.Arena{
		Logger:      logger,
		Concurrency: config.Concurrency,
		TimeControl: arena.TimeControl{
			FixedNodes: config.Nodes,
			FixedTime:  config.MoveTime,
			MaxPlies:   config.MaxPlies,
		},
		Openings:       arena.Openings(),
		NewEngineA:     func() arena.Engine { return newEngine(config.EvalA) },
		NewEngineB:     func() arena.Engine { return newEngine(config.EvalB) },
		OnGameFinished: onGameFinished,
	}
	var stat, err = a.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info().
		Int("wins", stat.Wins).
		Int("losses", stat.Losses).
		Int("draws", stat.Draws).
		Float64("elo", stat.EloDifference).
		Float64("los", stat.LOS).
		Msg("match finished")
	return nil
}

func newEngine(evalName string) arena.Engine {
	var options = engine.NewOptions(evalbuilder.Get(evalName))
	options.Hash = config.Hash
	return engine.NewEngine(options)
}
