package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/repositories/game"
)

// DefaultPlayersPerPage is used when a caller asks for a non-positive page size
const DefaultPlayersPerPage = 10

// Service provides methods for retrieving and processing player statistics
type Service struct {
	repository game.Repository
	now        func() time.Time
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank          int     `json:"rank"`
	WinRate       float64 `json:"win_rate"`
	PointsPerGame float64 `json:"points_per_game"`
	IsTopWinner   bool    `json:"is_top_winner"`
	IsTopPlayer   bool    `json:"is_top_player"`
}

// Leaderboard represents a paginated leaderboard of player statistics
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"total_players"`
	CurrentPage    int           `json:"current_page"`
	TotalPages     int           `json:"total_pages"`
	PlayersPerPage int           `json:"players_per_page"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// GetLeaderboard retrieves a paginated leaderboard ordered by wins, then
// total points, then name
func (s *Service) GetLeaderboard(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = DefaultPlayersPerPage
	}

	allStats, err := s.repository.GetAllPlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}

	playerRanks := make([]*PlayerRank, 0, len(allStats))
	for _, stats := range allStats {
		// Skip players with no matches
		if stats.MatchesPlayed == 0 {
			continue
		}

		playerRanks = append(playerRanks, &PlayerRank{
			PlayerStatistics: stats,
			WinRate:          stats.WinRate(),
			PointsPerGame:    float64(stats.TotalPoints) / float64(stats.MatchesPlayed),
		})
	}

	sort.SliceStable(playerRanks, func(i, j int) bool {
		a, b := playerRanks[i], playerRanks[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		return a.PlayerName < b.PlayerName
	})

	if len(playerRanks) > 0 {
		// Top winner heads the table
		playerRanks[0].IsTopWinner = true

		// Find the player with the most matches played
		mostMatchesIdx := 0
		for i := 1; i < len(playerRanks); i++ {
			if playerRanks[i].MatchesPlayed > playerRanks[mostMatchesIdx].MatchesPlayed {
				mostMatchesIdx = i
			}
		}
		playerRanks[mostMatchesIdx].IsTopPlayer = true
	}

	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	// Calculate pagination
	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	var currentPagePlayers []*PlayerRank
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	} else {
		currentPagePlayers = []*PlayerRank{}
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    s.now(),
	}, nil
}

// GetPlayerHistory returns a player's matches, oldest first
func (s *Service) GetPlayerHistory(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	return s.repository.GetPlayerResults(ctx, playerName)
}
