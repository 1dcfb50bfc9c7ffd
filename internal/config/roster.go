package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fadedpez/highcard/internal/types"
	"github.com/fadedpez/highcard/pkg/entities"
)

// Roster is a TOML file naming the players of a match and, optionally,
// the cards they start with:
//
//	[[players]]
//	name = "Ada"
//	age = 36
//
//	  [[players.hand]]
//	  rank = "Ace"
//	  suit = "Hearts"
//	  value = 1
type Roster struct {
	Players []RosterPlayer `toml:"players"`
}

// RosterPlayer is one player entry of a roster
type RosterPlayer struct {
	Name string              `toml:"name"`
	Age  *int                `toml:"age"`
	Hand []entities.CardSpec `toml:"hand"`
}

// LoadRoster decodes the roster file at path
func LoadRoster(path string) (*Roster, error) {
	var roster Roster
	md, err := toml.DecodeFile(path, &roster)
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidArgument, fmt.Sprintf("error decoding roster %s", path), err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &roster, nil
}

// DecodeRoster decodes a roster from r
func DecodeRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	md, err := toml.NewDecoder(r).Decode(&roster)
	if err != nil {
		return nil, types.WrapError(types.ErrInvalidArgument, "error decoding roster", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &roster, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, key := range undecoded {
		keys[i] = key.String()
	}
	return types.InvalidArgument(fmt.Sprintf("unknown roster keys: %s", strings.Join(keys, ", ")))
}

// Build creates a fresh set of players from the roster. Each call returns
// new players holding new starting hands.
func (r *Roster) Build() ([]*entities.Player, error) {
	players := make([]*entities.Player, 0, len(r.Players))
	for i, entry := range r.Players {
		if entry.Age == nil {
			return nil, types.MissingArgument(fmt.Sprintf("roster player %d has no age", i+1))
		}

		hand := make([]*entities.Card, 0, len(entry.Hand))
		for j, spec := range entry.Hand {
			card, err := spec.Card()
			if err != nil {
				return nil, fmt.Errorf("roster player %d, card %d: %w", i+1, j+1, err)
			}
			hand = append(hand, card)
		}

		player, err := entities.NewPlayer(entry.Name, *entry.Age, hand...)
		if err != nil {
			return nil, fmt.Errorf("roster player %d: %w", i+1, err)
		}
		players = append(players, player)
	}
	return players, nil
}
