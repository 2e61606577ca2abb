package common

import (
	"strconv"
	"strings"
	"unicode"
)

// normalizeFEN completes EPD style placements that omit the move counters.
func normalizeFEN(fen string) string {
	var fields = strings.Fields(fen)
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 5:
		fields = append(fields, "1")
	}
	return strings.Join(fields, " ")
}

func halfmoveClock(fen string) int {
	var fields = strings.Fields(fen)
	if len(fields) < 5 {
		return 0
	}
	var n, err = strconv.Atoi(fields[4])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func mirrorFEN(fen string) string {
	var fields = strings.Fields(normalizeFEN(fen))
	if len(fields) != 6 {
		return fen
	}

	var ranks = strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		var castling = swapCase(fields[2])
		var sb strings.Builder
		for _, c := range "KQkq" {
			if strings.ContainsRune(castling, c) {
				sb.WriteRune(c)
			}
		}
		fields[2] = sb.String()
	}

	if ep := ParseSquare(fields[3]); ep != SquareNone {
		fields[3] = SquareName(FlipSquare(ep))
	}

	return strings.Join(fields, " ")
}
