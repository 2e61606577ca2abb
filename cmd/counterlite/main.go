package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
	"github.com/ChizhovVadim/CounterLite/pkg/uci"
)

/*
Counter Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name   = "CounterLite"
	author = "Vadim Chizhov"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgEval     string
	flgHash     int
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function")
	flag.IntVar(&flgHash, "hash", 16, "transposition table size in MB")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Caller().Logger()

	logger.Info().
		Str("name", name).
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Str("goarch", runtime.GOARCH).
		Str("goos", runtime.GOOS).
		Int("numCPU", runtime.NumCPU()).
		Msg("engine started")

	var options = engine.NewOptions(evalbuilder.Get(flgEval))
	options.Hash = flgHash
	var eng = engine.NewEngine(options)

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Hash", Min: 1, Max: 1 << 16, Value: &eng.Options.Hash},
			&uci.ComboOption{Name: "TTReplace",
				Values: []string{engine.ReplaceAlways, engine.ReplaceDepthPreferred},
				Value:  &eng.Options.TTReplace},
			&uci.IntOption{Name: "ProgressMinNodes", Min: 0, Max: 1 << 30, Value: &eng.Options.ProgressMinNodes},
		},
	)
	protocol.Run(logger, os.Stdin, os.Stdout)
}
