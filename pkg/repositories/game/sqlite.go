package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/db/migrations"
	"github.com/fadedpez/highcard/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN opens a private in-memory SQLite database
const MemoryDSN = ":memory:"

// SQLiteRepository implements the Repository interface using an in-memory
// SQLite database
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository. Only in-memory DSNs
// are accepted; match history does not outlive the process.
func NewSQLiteRepository(dsn string) (*SQLiteRepository, error) {
	if dsn != MemoryDSN && !strings.Contains(dsn, "mode=memory") {
		return nil, types.InvalidArgument(fmt.Sprintf("sqlite DSN %q is not in-memory", dsn))
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error opening database", err)
	}

	// Every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	migrator := migrations.NewEmbeddedMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveMatchResult stores a match result with its players and rounds
func (r *SQLiteRepository) SaveMatchResult(ctx context.Context, result *entities.MatchResult) error {
	if err := validateResult(result); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error starting transaction", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM match_results WHERE id = ?`, result.ID).Scan(&exists)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error checking match", err)
	}
	if exists > 0 {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("match %s is already recorded", result.ID))
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO match_results (id, started_at, completed_at)
		VALUES (?, ?, ?)`,
		result.ID, result.StartedAt.UnixNano(), result.CompletedAt.UnixNano())
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error saving match", err)
	}

	for seat, pr := range result.Players {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO match_players (match_id, seat, name, age, points, result)
			VALUES (?, ?, ?, ?, ?, ?)`,
			result.ID, seat, pr.Name, pr.Age, pr.Points, pr.Result.String())
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, "error saving match player", err)
		}
	}

	for _, round := range result.Rounds {
		cardA, err := json.Marshal(round.CardA)
		if err != nil {
			return err
		}
		cardB, err := json.Marshal(round.CardB)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO match_rounds (match_id, number, card_a, card_b, outcome)
			VALUES (?, ?, ?, ?, ?)`,
			result.ID, round.Number, string(cardA), string(cardB), round.Outcome.String())
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, "error saving match round", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "error committing match", err)
	}
	return nil
}

// GetMatchResult retrieves a match by ID
func (r *SQLiteRepository) GetMatchResult(ctx context.Context, matchID string) (*entities.MatchResult, error) {
	results, err := r.queryResults(ctx, `
		SELECT id, started_at, completed_at FROM match_results
		WHERE id = ?`, matchID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("match %s not found", matchID))
	}
	return results[0], nil
}

// GetPlayerResults retrieves every match a player took part in, oldest first
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.MatchResult, error) {
	return r.queryResults(ctx, `
		SELECT id, started_at, completed_at FROM match_results
		WHERE id IN (SELECT match_id FROM match_players WHERE name = ?)
		ORDER BY seq ASC`, playerName)
}

// GetRecentResults retrieves up to limit of the most recent matches, oldest first
func (r *SQLiteRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.MatchResult, error) {
	return r.queryResults(ctx, `
		SELECT id, started_at, completed_at FROM (
			SELECT seq, id, started_at, completed_at FROM match_results
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq ASC`, limit)
}

// queryResults runs a query selecting (id, started_at, completed_at) and
// fills in the players and rounds of every match it returns
func (r *SQLiteRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]*entities.MatchResult, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying matches", err)
	}

	results := []*entities.MatchResult{}
	for rows.Next() {
		var (
			id          string
			startedAt   int64
			completedAt int64
		)
		if err := rows.Scan(&id, &startedAt, &completedAt); err != nil {
			rows.Close()
			return nil, types.WrapError(types.ErrDatabaseError, "error scanning match", err)
		}
		results = append(results, &entities.MatchResult{
			ID:          id,
			Players:     []*entities.PlayerResult{},
			Rounds:      []*entities.RoundResult{},
			StartedAt:   time.Unix(0, startedAt),
			CompletedAt: time.Unix(0, completedAt),
		})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating matches", err)
	}
	// The single connection must be released before the detail queries run
	rows.Close()

	for _, result := range results {
		if err := r.loadPlayers(ctx, result); err != nil {
			return nil, err
		}
		if err := r.loadRounds(ctx, result); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (r *SQLiteRepository) loadPlayers(ctx context.Context, result *entities.MatchResult) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, age, points, result FROM match_players
		WHERE match_id = ?
		ORDER BY seat ASC`, result.ID)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error querying match players", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pr        entities.PlayerResult
			resultStr string
		)
		if err := rows.Scan(&pr.Name, &pr.Age, &pr.Points, &resultStr); err != nil {
			return types.WrapError(types.ErrDatabaseError, "error scanning match player", err)
		}
		pr.Result = entities.Result(resultStr)
		result.Players = append(result.Players, &pr)
	}
	return rows.Err()
}

func (r *SQLiteRepository) loadRounds(ctx context.Context, result *entities.MatchResult) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT number, card_a, card_b, outcome FROM match_rounds
		WHERE match_id = ?
		ORDER BY number ASC`, result.ID)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error querying match rounds", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			round        entities.RoundResult
			cardA, cardB string
			outcome      string
		)
		if err := rows.Scan(&round.Number, &cardA, &cardB, &outcome); err != nil {
			return types.WrapError(types.ErrDatabaseError, "error scanning match round", err)
		}
		if err := json.Unmarshal([]byte(cardA), &round.CardA); err != nil {
			return fmt.Errorf("decoding round %d of match %s: %w", round.Number, result.ID, err)
		}
		if err := json.Unmarshal([]byte(cardB), &round.CardB); err != nil {
			return fmt.Errorf("decoding round %d of match %s: %w", round.Number, result.ID, err)
		}
		round.Outcome = entities.ParseOutcome(outcome)
		result.Rounds = append(result.Rounds, &round)
	}
	return rows.Err()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
