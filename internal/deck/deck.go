package deck

// NewDeck builds nDecks copies of a full 52-card deck in a fixed
// generation order: suit-major, rank-minor. The caller owns shuffling;
// this function is pure and deterministic.
func NewDeck(nDecks int) []Card {
	cards := make([]Card, 0, 52*nDecks)
	for i := 0; i < nDecks; i++ {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, New(rank, suit))
			}
		}
	}
	return cards
}
