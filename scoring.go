package jaipur

import "github.com/harissa-games/jaipur/deck"

const (
	camelBonus     = 5
	sealsToWin     = 2
	minHealthyPile = 3
)

// roundOver reports whether the round-end condition has been reached:
// the deck is empty, or fewer than three goods-token piles still hold
// at least three tokens.
func (g *Game) roundOver() bool {
	if len(g.Deck) == 0 {
		return true
	}
	healthy := 0
	for _, good := range deck.SaleGoods() {
		if len(g.TokenPiles[good]) >= minHealthyPile {
			healthy++
		}
	}
	return healthy < 3
}

// scoreRound resolves the round: applies the camel bonus, breaks ties,
// awards a seal and decides who acts first next round. It returns the
// round winner, or nil if the tie could not be broken (in which case no
// seal is awarded and the acting player is unchanged).
func (g *Game) scoreRound() *Player {
	p1, p2 := g.Player1, g.Player2

	points1, points2 := p1.Points(), p2.Points()
	camels1, camels2 := p1.Hand.Count(deck.Camel), p2.Hand.Count(deck.Camel)
	if camels1 > camels2 {
		points1 += camelBonus
	} else if camels2 > camels1 {
		points2 += camelBonus
	}

	winner := resolveWinner(p1, p2, points1, points2)
	if winner == nil {
		return nil
	}

	winner.Seals++

	// the loser consoles themselves by starting the next round
	if winner == p1 {
		g.CurrentPlayer = p2
	} else {
		g.CurrentPlayer = p1
	}
	return winner
}

// resolveWinner applies the tie-break cascade: total points, then bonus
// token count, then goods token count. Each tier is consulted only if
// the previous one is tied.
func resolveWinner(p1, p2 *Player, points1, points2 int) *Player {
	if points1 != points2 {
		if points1 > points2 {
			return p1
		}
		return p2
	}
	if p1.BonusTokenCount() != p2.BonusTokenCount() {
		if p1.BonusTokenCount() > p2.BonusTokenCount() {
			return p1
		}
		return p2
	}
	if p1.GoodsTokenCount() != p2.GoodsTokenCount() {
		if p1.GoodsTokenCount() > p2.GoodsTokenCount() {
			return p1
		}
		return p2
	}
	return nil
}
