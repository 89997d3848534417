package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/hundred/internal/deck"
	"github.com/KirkDiggler/hundred/internal/game"
	"github.com/KirkDiggler/hundred/internal/services/match"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#AF5F00")).
			Padding(0, 1).
			Bold(true)

	countStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// renderTable formats the table state: the count, the stock, whose
// turn it is, and optionally every hand.
func renderTable(m *match.MatchState, showHands bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "the count is %s\n", countStyle.Render(fmt.Sprintf("%d", m.Count)))
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("%d cards left", m.StockSize)))
	if m.TopDiscard != nil {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("top of discard: %s", m.TopDiscard)))
	}

	for _, p := range m.Players {
		marker := "  "
		if p.PlayerID == m.CurrentPlayerID {
			marker = "> "
		}
		if showHands {
			fmt.Fprintf(&b, "%s%s: %s\n", marker, p.PlayerName, renderHand(p.Hand))
		} else {
			fmt.Fprintf(&b, "%s%s: %d cards\n", marker, p.PlayerName, len(p.Hand))
		}
	}

	return b.String()
}

func renderHand(hand []deck.Card) string {
	tokens := make([]string, 0, len(hand))
	for _, c := range hand {
		tokens = append(tokens, fmt.Sprintf("%s (%s)", c.Shorthand(), c))
	}
	return strings.Join(tokens, ", ")
}

func renderStandings(standings []*match.PlayerStanding) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" standings "))
	b.WriteString("\n")
	for _, row := range standings {
		fmt.Fprintf(&b, "%s: %d sips taken, %d given / %d drinks taken, %d given\n",
			row.PlayerName, row.SipsTaken, row.SipsGiven, row.DrinksTaken, row.DrinksGiven)
	}
	return b.String()
}

// narrate turns a game event into a line of sip and drink chatter.
func narrate(e game.Event) string {
	switch e.Kind {
	case game.EventSipTaken:
		return fmt.Sprintf("%s takes %d sip%s", e.PlayerName, e.N, plural(e.N))
	case game.EventSipGiven:
		return fmt.Sprintf("%s gives out %d sip%s", e.PlayerName, e.N, plural(e.N))
	case game.EventDrinkTaken:
		return fmt.Sprintf("%s downs their drink", e.PlayerName)
	case game.EventDrinkGiven:
		return fmt.Sprintf("%s gives out a drink", e.PlayerName)
	case game.EventShuffle:
		return fmt.Sprintf("shuffling %d cards back into the stock", e.N)
	case game.EventRoundLost:
		if e.N > 0 {
			return fmt.Sprintf("%s lost the round, overshooting by %d", e.PlayerName, e.N)
		}
		return fmt.Sprintf("%s lost the round", e.PlayerName)
	}
	return ""
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
