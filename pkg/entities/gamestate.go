package entities

import "time"

// Outcome is the result of comparing the two cards played in a round
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWinA
	OutcomeWinB
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWinA:
		return "WIN_A"
	case OutcomeWinB:
		return "WIN_B"
	default:
		return "TIE"
	}
}

// ParseOutcome is the inverse of Outcome.String; unknown names are a tie
func ParseOutcome(s string) Outcome {
	switch s {
	case "WIN_A":
		return OutcomeWinA
	case "WIN_B":
		return OutcomeWinB
	default:
		return OutcomeTie
	}
}

// Result represents the outcome of a player's participation in a match
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLose Result = "LOSE"
	ResultTie  Result = "TIE"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin
}

// GameState tracks where a match is in its lifecycle
type GameState string

const (
	StateWaiting  GameState = "WAITING"
	StateDealing  GameState = "DEALING"
	StatePlaying  GameState = "PLAYING"
	StateComplete GameState = "COMPLETE"
)

// RoundResult records the cards played in one round and who won it
type RoundResult struct {
	Number  int     `json:"number"`
	CardA   Card    `json:"card_a"`
	CardB   Card    `json:"card_b"`
	Outcome Outcome `json:"outcome"`
}

// PlayerResult is one player's standing at the end of a match
type PlayerResult struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Points int    `json:"points"`
	Result Result `json:"result"`
}

// MatchResult represents the outcome of a completed match
type MatchResult struct {
	ID          string          `json:"id"`
	Players     []*PlayerResult `json:"players"`
	Rounds      []*RoundResult  `json:"rounds"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Winner returns the winning player's result, or nil on a tie
func (m *MatchResult) Winner() *PlayerResult {
	for _, pr := range m.Players {
		if pr.Result.IsWin() {
			return pr
		}
	}
	return nil
}
