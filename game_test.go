package jaipur

import (
	"math/rand"
	"testing"

	"github.com/harissa-games/jaipur/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame(GameOpts{})

	assert.Equal(t, Setup, g.State())
	assert.Equal(t, "Player 1", g.Player1.Name)
	assert.Equal(t, "Player 2", g.Player2.Name)
	assert.Equal(t, g.Player1, g.CurrentPlayer)
}

func TestStartRound(t *testing.T) {
	g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})

	require.NoError(t, g.StartRound())

	assert.Equal(t, PlayerTurn, g.State())
	assert.Equal(t, 5, g.Market.Size())
	assert.GreaterOrEqual(t, g.Market.Count(deck.Camel), 3, "the market is seeded with three camels")
	assert.Equal(t, 5, g.Player1.Hand.Size())
	assert.Equal(t, 5, g.Player2.Hand.Size())
	assert.Equal(t, deck.DeckSize-5-10, g.DeckSize())

	total := g.DeckSize() + g.Market.Size() + g.Player1.Hand.Size() + g.Player2.Hand.Size()
	assert.Equal(t, deck.DeckSize, total)

	counts := g.TokenPileCounts()
	assert.Equal(t, 9, counts[deck.Leather])
	assert.Equal(t, 5, counts[deck.Diamonds])
	assert.Equal(t, map[int]int{3: 7, 4: 6, 5: 5}, g.BonusPileCounts())
}

func TestStartRoundStateGating(t *testing.T) {
	t.Run("rejected mid-round", func(t *testing.T) {
		g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})
		require.NoError(t, g.StartRound())

		assert.Equal(t, ErrWrongState, g.StartRound())
	})

	t.Run("allowed between rounds", func(t *testing.T) {
		g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})
		g.state = BetweenRounds

		assert.NoError(t, g.StartRound())
		assert.Equal(t, PlayerTurn, g.State())
	})
}

func TestStartRoundResetsRoundState(t *testing.T) {
	g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})
	g.Player1.Tokens = []Token{{Good: deck.Gold, Value: 6}}
	g.Player1.Seals = 1
	g.Player1.Hand.Add(deck.Camel, 4)
	g.state = BetweenRounds

	require.NoError(t, g.StartRound())

	assert.Empty(t, g.Player1.Tokens, "tokens are per round")
	assert.Equal(t, 1, g.Player1.Seals, "seals persist across rounds")
	assert.Equal(t, 5, g.Player1.Hand.Size(), "hands are dealt fresh")
}

func TestPlayerActionStateGating(t *testing.T) {
	g := NewGame(GameOpts{Rand: rand.New(rand.NewSource(1))})

	err := g.PlayerAction(Action{Type: TakeCamels})
	assert.Equal(t, ErrWrongState, err, "no actions before the round starts")
}

func TestRoundEndAfterAction(t *testing.T) {
	g := gameInPlay()
	g.Deck = deck.Deck{}
	g.Player1.Tokens = []Token{{Good: deck.Gold, Value: 6}}

	// deck is empty, so a successful action ends the round
	err := g.PlayerAction(Action{Type: TakeCamels})
	require.NoError(t, err)

	assert.Equal(t, BetweenRounds, g.State())
	assert.Equal(t, 1, g.Player1.Seals, "the round winner earns a seal")
	assert.Equal(t, g.Player2, g.CurrentPlayer, "the loser acts first next round")
}

func TestMatchTermination(t *testing.T) {
	g := gameInPlay()
	g.Deck = deck.Deck{}
	g.Player1.Tokens = []Token{{Good: deck.Gold, Value: 6}}
	g.Player1.Seals = 1

	err := g.PlayerAction(Action{Type: TakeCamels})
	require.NoError(t, err)

	assert.Equal(t, Player1Victory, g.State())
	assert.True(t, g.State().Terminal())
	assert.Equal(t, g.Player1, g.Winner())

	t.Run("terminal state rejects further inputs", func(t *testing.T) {
		assert.Equal(t, ErrMatchOver, g.StartRound())
		assert.Equal(t, ErrMatchOver, g.PlayerAction(Action{Type: TakeCamels}))
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Setup", Setup.String())
	assert.Equal(t, "PlayerTurn", PlayerTurn.String())
	assert.Equal(t, "Player2Victory", Player2Victory.String())
	assert.Equal(t, "", State(99).String())
}
