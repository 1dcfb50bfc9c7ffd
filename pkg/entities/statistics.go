package entities

import "time"

// PlayerStatistics represents aggregated match statistics for a player
type PlayerStatistics struct {
	PlayerName    string
	MatchesPlayed int
	Wins          int
	Losses        int
	Ties          int
	TotalPoints   int
	LastUpdated   time.Time
}

// Record folds one match result into the statistics
func (s *PlayerStatistics) Record(pr *PlayerResult, at time.Time) {
	s.MatchesPlayed++
	s.TotalPoints += pr.Points

	switch pr.Result {
	case ResultWin:
		s.Wins++
	case ResultLose:
		s.Losses++
	case ResultTie:
		s.Ties++
	}

	if at.After(s.LastUpdated) {
		s.LastUpdated = at
	}
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.MatchesPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.MatchesPlayed) * 100.0
}
