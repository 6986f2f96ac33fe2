package jaipur

import "github.com/harissa-games/jaipur/deck"

// Player represents one of the two participants in a match. Hands and
// tokens are rebuilt every round; name and seals persist for the match.
type Player struct {
	Name   string        `json:"name"`
	Hand   deck.Multiset `json:"hand"`
	Tokens []Token       `json:"tokens"`
	Seals  int           `json:"seals"`
}

// NewPlayer constructs a new player
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// HandSize returns the number of cards in hand excluding camels.
// Camels live in the herd and don't count against the hand limit.
func (p *Player) HandSize() int {
	return p.Hand.Size() - p.Hand.Count(deck.Camel)
}

// Points returns the sum of the player's awarded token values
func (p *Player) Points() int {
	total := 0
	for _, t := range p.Tokens {
		total += t.Value
	}
	return total
}

// BonusTokenCount returns the number of bonus tokens held
func (p *Player) BonusTokenCount() int {
	n := 0
	for _, t := range p.Tokens {
		if t.IsBonus() {
			n++
		}
	}
	return n
}

// GoodsTokenCount returns the number of goods tokens held
func (p *Player) GoodsTokenCount() int {
	n := 0
	for _, t := range p.Tokens {
		if !t.IsBonus() {
			n++
		}
	}
	return n
}
