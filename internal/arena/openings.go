package arena

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// Openings returns the built-in opening FENs.
func Openings() []string {
	var result []string
	for _, line := range strings.Split(openingsTxt, "\n") {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

// loadOpenings sends every opening twice, once with engine A as white and once as black.
func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		var p, err = NewPositionFromFEN(opening)
		if err != nil {
			return fmt.Errorf("opening %v: %w", i+1, err)
		}
		var fen = p.String()
		for j, engineAIsWhite := range [2]bool{true, false} {
			var info = gameInfo{
				id:             uuid.NewString(),
				opening:        fen,
				engineAIsWhite: engineAIsWhite,
				gameNumber:     1 + 2*i + j,
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
	}
	return nil
}
