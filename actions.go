package jaipur

import "github.com/harissa-games/jaipur/deck"

// ActionType represents the four moves a player can make on their turn
type ActionType int

var actionNames = []string{"Take All Camels", "Take One Good", "Exchange", "Sell Cards"}

const (
	TakeCamels ActionType = iota
	TakeSingle
	Exchange
	Sell
)

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return ""
	}
	return actionNames[a]
}

// Action is a player's requested move. Which fields are read depends on
// Type: Good for TakeSingle, Good and Quantity for Sell, Take and Give
// for Exchange.
type Action struct {
	Type     ActionType    `json:"type"`
	Good     deck.Good     `json:"good,omitempty"`
	Quantity int           `json:"quantity,omitempty"`
	Take     deck.Multiset `json:"take,omitempty"`
	Give     deck.Multiset `json:"give,omitempty"`
}

const handLimit = 7

// applyAction validates the action against the current containers and,
// only if fully legal, applies it. A rejected action leaves every
// container untouched.
func (g *Game) applyAction(action Action) error {
	switch action.Type {
	case TakeCamels:
		return g.takeCamels()
	case TakeSingle:
		return g.takeSingle(action.Good)
	case Exchange:
		return g.exchange(action.Take, action.Give)
	case Sell:
		return g.sell(action.Good, action.Quantity)
	}
	return ErrUnknownAction
}

func (g *Game) takeCamels() error {
	numCamels := g.Market.Count(deck.Camel)
	if numCamels == 0 {
		return ErrNoCamelsToTake
	}

	g.Market.Remove(deck.Camel, numCamels)
	g.CurrentPlayer.Hand.Add(deck.Camel, numCamels)
	return nil
}

func (g *Game) takeSingle(good deck.Good) error {
	if g.CurrentPlayer.HandSize() >= handLimit {
		return ErrHandLimitReached
	}
	if g.Market.Count(good) == 0 {
		return ErrGoodNotInMarket
	}

	g.Market.Remove(good, 1)
	g.CurrentPlayer.Hand.Add(good, 1)
	return nil
}

func (g *Game) exchange(take, give deck.Multiset) error {
	if take.Size() != give.Size() {
		return ErrExchangeSizeMismatch
	}
	if take.Size() < 2 {
		return ErrExchangeTooSmall
	}
	if take.Count(deck.Camel) > 0 {
		return ErrExchangeTakeCamels
	}
	for good := deck.Good(0); good < deck.NumGoods; good++ {
		if take.Count(good) > 0 && give.Count(good) > 0 {
			return ErrExchangeSameGood
		}
	}
	if !g.Market.Contains(take) {
		return ErrExchangeNotInMarket
	}
	if !g.CurrentPlayer.Hand.Contains(give) {
		return ErrExchangeNotInHand
	}

	g.Market.RemoveAll(take)
	g.Market.AddAll(give)
	g.CurrentPlayer.Hand.RemoveAll(give)
	g.CurrentPlayer.Hand.AddAll(take)
	return nil
}

func (g *Game) sell(good deck.Good, quantity int) error {
	player := g.CurrentPlayer

	if good == deck.Camel {
		return ErrSellCamels
	}
	if quantity <= 0 {
		return ErrSellZero
	}
	if player.Hand.Count(good) < quantity {
		return ErrSellTooMany
	}
	if good.Precious() && quantity == 1 {
		return ErrSellSinglePrecious
	}

	player.Hand.Remove(good, quantity)
	g.Discarded.Add(good, quantity)

	for i := 0; i < quantity; i++ {
		// the pile may run dry; the seller simply doesn't get a token
		if token, ok := g.TokenPiles.Pop(good); ok {
			player.Tokens = append(player.Tokens, token)
		}
	}

	tier := quantity
	if tier > 5 {
		tier = 5
	}
	if tier >= 3 {
		if token, ok := g.BonusPiles.Pop(tier); ok {
			player.Tokens = append(player.Tokens, token)
		}
	}
	return nil
}
