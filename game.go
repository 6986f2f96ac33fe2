package jaipur

import (
	"math/rand"
	"time"

	"github.com/harissa-games/jaipur/deck"
)

// State represents the lifecycle state of a game
type State int

var stateNames = []string{
	"Setup",
	"PlayerTurn",
	"PendingAction",
	"BetweenTurns",
	"BetweenRounds",
	"Player1Victory",
	"Player2Victory",
}

const (
	Setup State = iota
	PlayerTurn
	PendingAction
	BetweenTurns
	BetweenRounds
	Player1Victory
	Player2Victory
)

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// Terminal reports whether the match is over
func (s State) Terminal() bool {
	return s == Player1Victory || s == Player2Victory
}

// transition is an internally generated input to the state machine.
// Success and failure of an action, turn changes and round/match ends
// are chained through a driving loop rather than re-entrant calls.
type transition int

const (
	actionSucceeded transition = iota
	actionFailed
	nextTurn
	endOfRound
	player1Wins
	player2Wins
)

const (
	marketSize       = 5
	marketSeedCamels = 3
	openingHandSize  = 5
)

// Game is the aggregate state of a two-player match: both players, the
// shared containers and the lifecycle state. It is a single logical
// actor; callers must not submit concurrent inputs.
type Game struct {
	Player1       *Player
	Player2       *Player
	Market        deck.Multiset
	Deck          deck.Deck
	TokenPiles    TokenPiles
	BonusPiles    BonusPiles
	Discarded     deck.Multiset
	CurrentPlayer *Player

	state State
	rand  *rand.Rand
}

// GameOpts are optional constructor arguments for a Game. The zero
// value gives default player names and a time-seeded shuffle source.
type GameOpts struct {
	Player1Name string
	Player2Name string
	Rand        *rand.Rand
}

// NewGame constructs a new game of Jaipur in the Setup state
func NewGame(opts GameOpts) *Game {
	if opts.Player1Name == "" {
		opts.Player1Name = "Player 1"
	}
	if opts.Player2Name == "" {
		opts.Player2Name = "Player 2"
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Player1: NewPlayer(opts.Player1Name),
		Player2: NewPlayer(opts.Player2Name),
		rand:    opts.Rand,
	}
	g.CurrentPlayer = g.Player1
	return g
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.state
}

// StartRound builds fresh containers, shuffles, seeds the market and
// deals opening hands. Valid only in Setup or BetweenRounds.
func (g *Game) StartRound() error {
	if g.state.Terminal() {
		return ErrMatchOver
	}
	if g.state != Setup && g.state != BetweenRounds {
		return ErrWrongState
	}

	g.setupRound()
	g.state = PlayerTurn
	return nil
}

// PlayerAction validates and executes the acting player's move. On
// rejection the game state is unchanged, the turn is not consumed and
// the error classifies the failure (see errors.go). On success the
// machine advances internally: market refill, turn change, and round
// or match end when reached.
func (g *Game) PlayerAction(action Action) error {
	if g.state.Terminal() {
		return ErrMatchOver
	}
	if g.state != PlayerTurn {
		return ErrWrongState
	}

	g.state = PendingAction
	if err := g.applyAction(action); err != nil {
		g.advance(actionFailed)
		return err
	}
	g.advance(actionSucceeded)
	return nil
}

// advance consumes internally generated transitions until the machine
// settles in a state that needs external input again.
func (g *Game) advance(tr transition) {
	for {
		switch tr {
		case actionFailed:
			g.state = PlayerTurn
			return

		case actionSucceeded:
			g.refillMarket()
			g.state = BetweenTurns
			if g.roundOver() {
				tr = endOfRound
			} else {
				tr = nextTurn
			}

		case nextTurn:
			g.toggleCurrentPlayer()
			g.state = PlayerTurn
			return

		case endOfRound:
			winner := g.scoreRound()
			g.state = BetweenRounds
			switch {
			case winner == g.Player1 && winner.Seals >= sealsToWin:
				tr = player1Wins
			case winner == g.Player2 && winner.Seals >= sealsToWin:
				tr = player2Wins
			default:
				return
			}

		case player1Wins:
			g.state = Player1Victory
			return

		case player2Wins:
			g.state = Player2Victory
			return
		}
	}
}

func (g *Game) setupRound() {
	g.Deck = deck.New()
	g.Deck.Shuffle(g.rand)

	g.TokenPiles = NewTokenPiles()
	g.BonusPiles = NewBonusPiles()
	g.BonusPiles.Shuffle(g.rand)

	g.Market = deck.Multiset{}
	g.Discarded = deck.Multiset{}

	// hands and tokens are per round; names and seals persist
	for _, p := range []*Player{g.Player1, g.Player2} {
		p.Hand = deck.Multiset{}
		p.Tokens = nil
	}

	for i := 0; i < marketSeedCamels; i++ {
		if camel, ok := g.Deck.RemoveFirstMatching(deck.Camel); ok {
			g.Market.Add(camel, 1)
		}
	}
	for g.Market.Size() < marketSize {
		card, _ := g.Deck.DrawTop()
		g.Market.Add(card, 1)
	}

	for i := 0; i < openingHandSize; i++ {
		card, _ := g.Deck.DrawTop()
		g.Player1.Hand.Add(card, 1)
		card, _ = g.Deck.DrawTop()
		g.Player2.Hand.Add(card, 1)
	}
}

// refillMarket tops the market back up to five cards. The deck running
// out mid-refill is a normal terminal condition.
func (g *Game) refillMarket() {
	for g.Market.Size() < marketSize {
		card, ok := g.Deck.DrawTop()
		if !ok {
			break
		}
		g.Market.Add(card, 1)
	}
}

func (g *Game) toggleCurrentPlayer() {
	if g.CurrentPlayer == g.Player1 {
		g.CurrentPlayer = g.Player2
	} else {
		g.CurrentPlayer = g.Player1
	}
}

// DeckSize returns the number of cards left in the deck
func (g *Game) DeckSize() int {
	return len(g.Deck)
}

// TokenPileCounts returns the number of tokens remaining per goods pile
func (g *Game) TokenPileCounts() map[deck.Good]int {
	counts := map[deck.Good]int{}
	for good, pile := range g.TokenPiles {
		counts[good] = len(pile)
	}
	return counts
}

// BonusPileCounts returns the number of tokens remaining per bonus tier
func (g *Game) BonusPileCounts() map[int]int {
	counts := map[int]int{}
	for tier, pile := range g.BonusPiles {
		counts[tier] = len(pile)
	}
	return counts
}

// Winner returns the match winner in a terminal state, else nil
func (g *Game) Winner() *Player {
	switch g.state {
	case Player1Victory:
		return g.Player1
	case Player2Victory:
		return g.Player2
	}
	return nil
}
