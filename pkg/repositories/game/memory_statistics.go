package game

import (
	"context"
	"sort"

	"github.com/fadedpez/highcard/pkg/entities"
)

// GetAllPlayerStatistics aggregates every recorded match by player name,
// counting each match once per name
func (r *MemoryRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statsList := make([]*entities.PlayerStatistics, 0, len(r.playerResults))
	for name, results := range r.playerResults {
		stats := &entities.PlayerStatistics{PlayerName: name}
		for _, result := range results {
			// A name seated twice in one match counts once, from its first seat
			for _, pr := range result.Players {
				if pr.Name == name {
					stats.Record(pr, result.CompletedAt)
					break
				}
			}
		}
		statsList = append(statsList, stats)
	}

	sort.Slice(statsList, func(i, j int) bool {
		return statsList[i].PlayerName < statsList[j].PlayerName
	})

	return statsList, nil
}
