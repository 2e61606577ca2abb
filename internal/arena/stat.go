package arena

import "math"

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Stat {
	var stat = Stat{Wins: wins, Losses: losses, Draws: draws}
	var games = wins + losses + draws
	if games == 0 {
		return stat
	}
	stat.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stat.EloDifference = -math.Log(1/stat.WinningFraction-1) * 400 / math.Ln10
	if wins+losses == 0 {
		stat.LOS = 0.5
	} else {
		stat.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return stat
}

func (s *Stat) add(r GameResult) {
	if r.Result == gameResultDraw {
		s.Draws++
	} else if r.Result == gameResultWhiteWins && r.EngineAIsWhite ||
		r.Result == gameResultBlackWins && !r.EngineAIsWhite {
		s.Wins++
	} else {
		s.Losses++
	}
	*s = computeStat(s.Wins, s.Losses, s.Draws)
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return "1-0"
	case gameResultBlackWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
