package tactic

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

type EpdItem struct {
	ID        string
	Content   string
	Position  *common.Position
	BestMoves []common.Move
}

// LoadEpd reads test positions. Lines that fail to parse are logged and skipped.
func LoadEpd(logger zerolog.Logger, filePath string) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var result []EpdItem
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			logger.Warn().Err(err).Msg("skip epd line")
			continue
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %v: %w", filePath, err)
	}
	return result, nil
}

func parseEpdTest(s string) (EpdItem, error) {
	var fields = strings.Fields(s)
	if len(fields) < 5 {
		return EpdItem{}, fmt.Errorf("bad epd %v", s)
	}
	var fen = strings.Join(fields[:4], " ")

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var item = EpdItem{
		Content:  s,
		Position: p,
	}
	for _, op := range strings.Split(strings.Join(fields[4:], " "), ";") {
		var opFields = strings.Fields(op)
		if len(opFields) < 2 {
			continue
		}
		switch opFields[0] {
		case "bm":
			for _, san := range opFields[1:] {
				var move, err = parseMoveSAN(p, san)
				if err != nil {
					return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
				}
				item.BestMoves = append(item.BestMoves, move)
			}
		case "id":
			item.ID = strings.Trim(strings.Join(opFields[1:], " "), "\"")
		}
	}
	if len(item.BestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}
	return item, nil
}

// parseMoveSAN resolves standard algebraic notation through the referee board.
func parseMoveSAN(p *common.Position, san string) (common.Move, error) {
	var opt, err = chess.FEN(p.String())
	if err != nil {
		return common.MoveEmpty, err
	}
	var pos = chess.NewGame(opt).Position()
	m, err := chess.AlgebraicNotation{}.Decode(pos, san)
	if err != nil {
		return common.MoveEmpty, err
	}
	var move = p.ParseMoveLAN(chess.UCINotation{}.Encode(pos, m))
	if move == common.MoveEmpty {
		return common.MoveEmpty, fmt.Errorf("move %v not legal", san)
	}
	return move, nil
}
