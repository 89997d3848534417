package game

// Listener receives notifications about the social side of the game:
// sips and drinks handed out or taken, reshuffles, and lost rounds.
// The core emits events instead of logging so that a CLI, bot, or test
// can render them however it likes.
type Listener interface {
	// OnSipTaken fires when a player takes n sips
	OnSipTaken(player *Player, n int)

	// OnSipGiven fires when a player hands out n sips. The recipient is
	// nil when the table decides who drinks.
	OnSipGiven(player *Player, to *Player, n int)

	// OnDrinkTaken fires when a player downs a full drink
	OnDrinkTaken(player *Player)

	// OnDrinkGiven fires when a player hands out a full drink. The
	// recipient is nil when the table decides who drinks.
	OnDrinkGiven(player *Player, to *Player)

	// OnShuffle fires when n wastepile cards are returned to the stock
	OnShuffle(n int)

	// OnRoundLost fires when a player pushes the count to 100 or beyond.
	// overshot is the amount past 100, which may be zero.
	OnRoundLost(player *Player, overshot int)
}

// NopListener implements Listener with no behavior. Embed it to build
// listeners that only care about some events.
type NopListener struct{}

func (NopListener) OnSipTaken(*Player, int)          {}
func (NopListener) OnSipGiven(*Player, *Player, int) {}
func (NopListener) OnDrinkTaken(*Player)             {}
func (NopListener) OnDrinkGiven(*Player, *Player)    {}
func (NopListener) OnShuffle(int)                    {}
func (NopListener) OnRoundLost(*Player, int)         {}

// EventKind identifies a recorded game event
type EventKind string

const (
	EventSipTaken   EventKind = "sip_taken"
	EventSipGiven   EventKind = "sip_given"
	EventDrinkTaken EventKind = "drink_taken"
	EventDrinkGiven EventKind = "drink_given"
	EventShuffle    EventKind = "shuffle"
	EventRoundLost  EventKind = "round_lost"
)

// Event is a flat record of a single emitted notification
type Event struct {
	Kind       EventKind `json:"kind"`
	PlayerID   string    `json:"player_id,omitempty"`
	PlayerName string    `json:"player_name,omitempty"`
	N          int       `json:"n,omitempty"`
}

// Recorder is a Listener that collects events in order. It backs the
// match service outputs and deterministic tests.
type Recorder struct {
	events []Event
}

// Events returns the recorded events in emission order
func (r *Recorder) Events() []Event {
	return r.events
}

// Reset discards all recorded events
func (r *Recorder) Reset() {
	r.events = nil
}

func (r *Recorder) record(kind EventKind, p *Player, n int) {
	e := Event{Kind: kind, N: n}
	if p != nil {
		e.PlayerID = p.ID
		e.PlayerName = p.Name
	}
	r.events = append(r.events, e)
}

func (r *Recorder) OnSipTaken(p *Player, n int)            { r.record(EventSipTaken, p, n) }
func (r *Recorder) OnSipGiven(p *Player, _ *Player, n int) { r.record(EventSipGiven, p, n) }
func (r *Recorder) OnDrinkTaken(p *Player)                 { r.record(EventDrinkTaken, p, 1) }
func (r *Recorder) OnDrinkGiven(p *Player, _ *Player)      { r.record(EventDrinkGiven, p, 1) }
func (r *Recorder) OnShuffle(n int)                        { r.record(EventShuffle, nil, n) }
func (r *Recorder) OnRoundLost(p *Player, overshot int)    { r.record(EventRoundLost, p, overshot) }

func (g *Game) emitSipTaken(p *Player, n int) {
	for _, l := range g.listeners {
		l.OnSipTaken(p, n)
	}
}

func (g *Game) emitSipGiven(p, to *Player, n int) {
	for _, l := range g.listeners {
		l.OnSipGiven(p, to, n)
	}
}

func (g *Game) emitDrinkTaken(p *Player) {
	for _, l := range g.listeners {
		l.OnDrinkTaken(p)
	}
}

func (g *Game) emitDrinkGiven(p, to *Player) {
	for _, l := range g.listeners {
		l.OnDrinkGiven(p, to)
	}
}

func (g *Game) emitShuffle(n int) {
	for _, l := range g.listeners {
		l.OnShuffle(n)
	}
}

func (g *Game) emitRoundLost(p *Player, overshot int) {
	for _, l := range g.listeners {
		l.OnRoundLost(p, overshot)
	}
}
