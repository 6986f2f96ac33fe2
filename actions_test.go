package jaipur

import (
	"math/rand"
	"testing"

	"github.com/harissa-games/jaipur/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameInPlay returns a deterministic mid-round game with the acting
// player holding a known hand and a known market on the table.
func gameInPlay() *Game {
	g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})
	g.TokenPiles = NewTokenPiles()
	g.BonusPiles = NewBonusPiles()
	g.Deck = deck.Deck{deck.Leather, deck.Spice, deck.Cloth, deck.Leather, deck.Spice, deck.Cloth}
	g.Market = deck.NewMultiset(deck.Camel, deck.Camel, deck.Camel, deck.Diamonds, deck.Gold)
	g.Player1.Hand = deck.NewMultiset(deck.Silver, deck.Silver, deck.Silver, deck.Leather, deck.Camel)
	g.Player2.Hand = deck.NewMultiset(deck.Spice, deck.Spice)
	g.CurrentPlayer = g.Player1
	g.state = PlayerTurn
	return g
}

func TestTakeCamels(t *testing.T) {
	t.Run("moves every camel from market to herd", func(t *testing.T) {
		g := gameInPlay()

		err := g.PlayerAction(Action{Type: TakeCamels})
		require.NoError(t, err)

		assert.Equal(t, 0, g.Market.Count(deck.Camel))
		assert.Equal(t, 4, g.Player1.Hand.Count(deck.Camel))
		assert.Equal(t, 5, g.Market.Size(), "market must be refilled to 5")
		assert.Equal(t, g.Player2, g.CurrentPlayer, "a successful action consumes the turn")
		assert.Equal(t, PlayerTurn, g.State())
	})

	t.Run("fails when the market holds no camels", func(t *testing.T) {
		g := gameInPlay()
		g.Market = deck.NewMultiset(deck.Leather, deck.Spice, deck.Cloth, deck.Gold, deck.Diamonds)

		err := g.PlayerAction(Action{Type: TakeCamels})
		assert.Equal(t, ErrNoCamelsToTake, err)
		assert.True(t, IsRuleViolation(err))
	})
}

func TestTakeSingle(t *testing.T) {
	t.Run("moves one good from market to hand", func(t *testing.T) {
		g := gameInPlay()

		err := g.PlayerAction(Action{Type: TakeSingle, Good: deck.Gold})
		require.NoError(t, err)

		assert.Equal(t, 1, g.Player1.Hand.Count(deck.Gold))
		assert.Equal(t, 0, g.Market.Count(deck.Gold))
		assert.Equal(t, 5, g.Market.Size())
	})

	t.Run("fails when the hand limit is reached", func(t *testing.T) {
		g := gameInPlay()
		g.Player1.Hand = deck.Multiset{}
		g.Player1.Hand.Add(deck.Leather, 7)
		g.Player1.Hand.Add(deck.Camel, 3) // herd is exempt, hand is still full

		err := g.PlayerAction(Action{Type: TakeSingle, Good: deck.Gold})
		assert.Equal(t, ErrHandLimitReached, err)
	})

	t.Run("fails when the good is not in the market", func(t *testing.T) {
		g := gameInPlay()

		err := g.PlayerAction(Action{Type: TakeSingle, Good: deck.Cloth})
		assert.Equal(t, ErrGoodNotInMarket, err)
	})
}

func TestExchange(t *testing.T) {
	tt := []struct {
		name string
		take deck.Multiset
		give deck.Multiset
		err  error
	}{
		{
			"mismatched sizes are a malformed request",
			deck.NewMultiset(deck.Gold, deck.Diamonds),
			deck.NewMultiset(deck.Silver),
			ErrExchangeSizeMismatch,
		},
		{
			"fewer than two cards",
			deck.NewMultiset(deck.Gold),
			deck.NewMultiset(deck.Silver),
			ErrExchangeTooSmall,
		},
		{
			"camels cannot be taken",
			deck.NewMultiset(deck.Camel, deck.Gold),
			deck.NewMultiset(deck.Silver, deck.Silver),
			ErrExchangeTakeCamels,
		},
		{
			"same good on both sides",
			deck.NewMultiset(deck.Gold, deck.Diamonds),
			deck.NewMultiset(deck.Silver, deck.Gold),
			ErrExchangeSameGood,
		},
		{
			"take not available in market",
			deck.NewMultiset(deck.Cloth, deck.Gold),
			deck.NewMultiset(deck.Silver, deck.Silver),
			ErrExchangeNotInMarket,
		},
		{
			"give not available in hand",
			deck.NewMultiset(deck.Gold, deck.Diamonds),
			deck.NewMultiset(deck.Spice, deck.Spice),
			ErrExchangeNotInHand,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := gameInPlay()

			err := g.PlayerAction(Action{Type: Exchange, Take: tc.take, Give: tc.give})
			assert.Equal(t, tc.err, err)
			assert.Equal(t, g.Player1, g.CurrentPlayer, "a rejected action must not consume the turn")
		})
	}

	t.Run("malformed vs rule violation classification", func(t *testing.T) {
		assert.False(t, IsRuleViolation(ErrExchangeSizeMismatch))
		assert.True(t, IsRuleViolation(ErrExchangeTooSmall))
	})

	t.Run("swaps the declared multisets, camels as currency", func(t *testing.T) {
		g := gameInPlay()
		take := deck.NewMultiset(deck.Gold, deck.Diamonds)
		give := deck.NewMultiset(deck.Camel, deck.Leather)

		marketBefore := g.Market.Size()
		handBefore := g.Player1.Hand.Size()

		err := g.PlayerAction(Action{Type: Exchange, Take: take, Give: give})
		require.NoError(t, err)

		assert.Equal(t, 1, g.Player1.Hand.Count(deck.Gold))
		assert.Equal(t, 1, g.Player1.Hand.Count(deck.Diamonds))
		assert.Equal(t, 0, g.Player1.Hand.Count(deck.Camel))
		assert.Equal(t, 0, g.Player1.Hand.Count(deck.Leather))
		assert.Equal(t, 4, g.Market.Count(deck.Camel))
		assert.Equal(t, 1, g.Market.Count(deck.Leather))
		assert.Equal(t, marketBefore, g.Market.Size(), "an exchange never changes the market size")
		assert.Equal(t, handBefore, g.Player1.Hand.Size())
	})
}

func TestSell(t *testing.T) {
	tt := []struct {
		name     string
		good     deck.Good
		quantity int
		err      error
	}{
		{"camels cannot be sold", deck.Camel, 2, ErrSellCamels},
		{"zero cards cannot be sold", deck.Silver, 0, ErrSellZero},
		{"cannot sell more than held", deck.Silver, 4, ErrSellTooMany},
		{"single precious good", deck.Silver, 1, ErrSellSinglePrecious},
		{"legal sale", deck.Silver, 3, nil},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			g := gameInPlay()

			err := g.PlayerAction(Action{Type: Sell, Good: tc.good, Quantity: tc.quantity})
			assert.Equal(t, tc.err, err)
		})
	}

	t.Run("single non-precious good is legal", func(t *testing.T) {
		g := gameInPlay()

		err := g.PlayerAction(Action{Type: Sell, Good: deck.Leather, Quantity: 1})
		require.NoError(t, err)

		require.Len(t, g.Player1.Tokens, 1)
		assert.Equal(t, 4, g.Player1.Tokens[0].Value, "the first leather sale earns the top token")
	})

	t.Run("selling three silver awards tokens then the tier-3 bonus", func(t *testing.T) {
		g := gameInPlay()

		err := g.PlayerAction(Action{Type: Sell, Good: deck.Silver, Quantity: 3})
		require.NoError(t, err)

		assert.Equal(t, 0, g.Player1.Hand.Count(deck.Silver))
		assert.Equal(t, 3, g.Discarded.Count(deck.Silver))

		require.Len(t, g.Player1.Tokens, 4)
		for _, token := range g.Player1.Tokens[:3] {
			assert.Equal(t, deck.Silver, token.Good)
			assert.Equal(t, 5, token.Value)
		}
		bonus := g.Player1.Tokens[3]
		assert.True(t, bonus.IsBonus(), "the bonus token is appended after the goods tokens")
		assert.Equal(t, 3, bonus.Bonus)

		assert.Len(t, g.TokenPiles[deck.Silver], 2)
		assert.Len(t, g.BonusPiles[3], 6)
	})

	t.Run("an exhausted goods pile is skipped silently", func(t *testing.T) {
		g := gameInPlay()
		g.TokenPiles[deck.Silver] = TokenPile{}

		err := g.PlayerAction(Action{Type: Sell, Good: deck.Silver, Quantity: 2})
		require.NoError(t, err)

		assert.Empty(t, g.Player1.Tokens, "no tokens left means no tokens awarded")
		assert.Equal(t, 0, g.Player1.Hand.Count(deck.Silver))
	})
}

func TestUnknownActionIsMalformed(t *testing.T) {
	g := gameInPlay()

	err := g.PlayerAction(Action{Type: ActionType(42)})
	assert.Equal(t, ErrUnknownAction, err)
	assert.False(t, IsRuleViolation(err))
}

func TestRejectionLeavesGameUntouched(t *testing.T) {
	g := gameInPlay()

	marketBefore := g.Market
	handBefore := g.Player1.Hand
	deckBefore := len(g.Deck)
	pilesBefore := g.TokenPileCounts()

	err := g.PlayerAction(Action{Type: Sell, Good: deck.Silver, Quantity: 1})
	assert.Error(t, err)

	assert.Equal(t, marketBefore, g.Market)
	assert.Equal(t, handBefore, g.Player1.Hand)
	assert.Equal(t, deckBefore, len(g.Deck))
	assert.Equal(t, pilesBefore, g.TokenPileCounts())
	assert.Equal(t, g.Player1, g.CurrentPlayer)
	assert.Equal(t, PlayerTurn, g.State())
}

func TestCardConservation(t *testing.T) {
	g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(3))})
	require.NoError(t, g.StartRound())

	totalCards := func() int {
		return len(g.Deck) + g.Market.Size() +
			g.Player1.Hand.Size() + g.Player2.Hand.Size() +
			g.Discarded.Size()
	}

	assert.Equal(t, deck.DeckSize, totalCards())

	// play a handful of turns; every good is always somewhere
	for i := 0; i < 10 && g.State() == PlayerTurn; i++ {
		player := g.CurrentPlayer

		var err error
		switch {
		case g.Market.Count(deck.Camel) > 0:
			err = g.PlayerAction(Action{Type: TakeCamels})
		case player.Hand.Count(deck.Leather) > 0:
			err = g.PlayerAction(Action{Type: Sell, Good: deck.Leather, Quantity: player.Hand.Count(deck.Leather)})
		default:
			for _, good := range deck.SaleGoods() {
				if g.Market.Count(good) > 0 {
					err = g.PlayerAction(Action{Type: TakeSingle, Good: good})
					break
				}
			}
		}

		if err == nil {
			assert.Equal(t, deck.DeckSize, totalCards(), "turn %d", i)
		}
	}
}
