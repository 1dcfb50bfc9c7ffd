package game

import (
	"context"
	"time"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
)

// GetAllPlayerStatistics aggregates every recorded match by player name,
// counting each match once per name
func (r *SQLiteRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	query := `
		SELECT p.name,
		       COUNT(*),
		       SUM(CASE WHEN p.result = 'WIN' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN p.result = 'LOSE' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN p.result = 'TIE' THEN 1 ELSE 0 END),
		       SUM(p.points),
		       MAX(m.completed_at)
		FROM match_players p
		JOIN match_results m ON m.id = p.match_id
		WHERE p.seat = (
			SELECT MIN(q.seat) FROM match_players q
			WHERE q.match_id = p.match_id AND q.name = p.name
		)
		GROUP BY p.name
		ORDER BY p.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query player statistics", err)
	}
	defer rows.Close()

	statsList := []*entities.PlayerStatistics{}
	for rows.Next() {
		var (
			stats       entities.PlayerStatistics
			lastUpdated int64
		)
		err := rows.Scan(
			&stats.PlayerName, &stats.MatchesPlayed, &stats.Wins, &stats.Losses,
			&stats.Ties, &stats.TotalPoints, &lastUpdated,
		)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan player statistics", err)
		}
		stats.LastUpdated = time.Unix(0, lastUpdated)
		statsList = append(statsList, &stats)
	}

	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating player statistics", err)
	}

	return statsList, nil
}
