package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/highcard/pkg/entities"
	"github.com/fadedpez/highcard/pkg/games/highcard"
	"github.com/fadedpez/highcard/pkg/services/statistics"
	"github.com/fatih/color"
)

const banner = `
$$\   $$\ $$\           $$\              $$$$$$\                            $$\        $$$$$$\
$$ |  $$ |\__|          $$ |            $$  __$$\                           $$ |      $$  __$$\
$$ |  $$ |$$\  $$$$$$\  $$$$$$$\        $$ /  \__| $$$$$$\   $$$$$$\   $$$$$$$ |      $$ /  \__| $$$$$$\  $$$$$$\$$$$\   $$$$$$\
$$$$$$$$ |$$ |$$  __$$\ $$  __$$\       $$ |       \____$$\ $$  __$$\ $$  __$$ |      $$ |$$$$\  \____$$\ $$  _$$  _$$\ $$  __$$\
$$  __$$ |$$ |$$ /  $$ |$$ |  $$ |      $$ |       $$$$$$$ |$$ |  \__|$$ /  $$ |      $$ |\_$$ | $$$$$$$ |$$ / $$ / $$ |$$$$$$$$ |
$$ |  $$ |$$ |$$ |  $$ |$$ |  $$ |      $$ |  $$\ $$  __$$ |$$ |      $$ |  $$ |      $$ |  $$ |$$  __$$ |$$ | $$ | $$ |$$   ____|
$$ |  $$ |$$ |\$$$$$$$ |$$ |  $$ |      \$$$$$$  |\$$$$$$$ |$$ |      \$$$$$$$ |      \$$$$$$  |\$$$$$$$ |$$ | $$ | $$ |\$$$$$$$\
\__|  \__|\__| \____$$ |\__|  \__|       \______/  \_______|\__|       \_______|       \______/  \_______|\__| \__| \__| \_______|
              $$\   $$ |
              \$$$$$$  |
               \______/
`

// Narrator prints a match as it is played
type Narrator struct {
	out     io.Writer
	title   *color.Color
	heading *color.Color
	card    *color.Color
	winner  *color.Color
	tie     *color.Color
}

// Ensure Narrator can observe high card games
var _ highcard.Observer = (*Narrator)(nil)

// NewNarrator creates a narrator writing to out
func NewNarrator(out io.Writer, noColor bool) *Narrator {
	n := &Narrator{
		out:     out,
		title:   color.New(color.FgHiCyan, color.Bold),
		heading: color.New(color.FgCyan),
		card:    color.New(color.FgHiWhite),
		winner:  color.New(color.FgGreen, color.Bold),
		tie:     color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{n.title, n.heading, n.card, n.winner, n.tie} {
			c.DisableColor()
		}
	}
	return n
}

// Banner prints the title art
func (n *Narrator) Banner() {
	n.title.Fprintln(n.out, strings.TrimPrefix(banner, "\n"))
}

// MatchHeader announces one match of a series
func (n *Narrator) MatchHeader(number, total int) {
	n.title.Fprintf(n.out, "\n=== Match %d of %d ===\n", number, total)
}

// RoundPlayed prints the cards of a round and who took it
func (n *Narrator) RoundPlayed(g *highcard.Game, round *entities.RoundResult) {
	a, b := g.Players[0].Name(), g.Players[1].Name()

	n.heading.Fprintf(n.out, "\nRound %d:\n", round.Number)
	fmt.Fprintf(n.out, "%s plays: %s\n", a, n.card.Sprint(round.CardA.String()))
	fmt.Fprintf(n.out, "%s plays: %s\n", b, n.card.Sprint(round.CardB.String()))

	switch round.Outcome {
	case entities.OutcomeWinA:
		n.winner.Fprintf(n.out, "%s wins the round!\n", a)
	case entities.OutcomeWinB:
		n.winner.Fprintf(n.out, "%s wins the round!\n", b)
	default:
		n.tie.Fprintln(n.out, "Tie, no points awarded.")
	}
}

// MatchFinished prints the final scores and the winner
func (n *Narrator) MatchFinished(g *highcard.Game, result *entities.MatchResult) {
	n.heading.Fprintln(n.out, "\nFinal Scores:")
	for _, pr := range result.Players {
		fmt.Fprintf(n.out, "%s: %d\n", pr.Name, pr.Points)
	}

	if winner := result.Winner(); winner != nil {
		n.winner.Fprintf(n.out, "Winner: %s\n", winner.Name)
	} else {
		n.tie.Fprintln(n.out, "It's a tie!")
	}
}

// Leaderboard prints standings across a series of matches
func (n *Narrator) Leaderboard(lb *statistics.Leaderboard) {
	n.title.Fprintln(n.out, "\nLeaderboard")
	n.heading.Fprintf(n.out, "%-4s %-20s %4s %4s %4s %6s %6s\n", "#", "Player", "W", "L", "T", "Points", "Win%")
	for _, rank := range lb.Players {
		line := fmt.Sprintf("%-4d %-20s %4d %4d %4d %6d %5.1f%%",
			rank.Rank, rank.PlayerName, rank.Wins, rank.Losses, rank.Ties, rank.TotalPoints, rank.WinRate)
		if rank.IsTopWinner {
			n.winner.Fprintln(n.out, line)
			continue
		}
		fmt.Fprintln(n.out, line)
	}
}
