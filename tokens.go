package jaipur

import (
	"math/rand"

	"github.com/harissa-games/jaipur/deck"
)

// Token is a scoring token awarded for a sale. Goods tokens carry the
// good they were earned for; bonus tokens carry the sale-quantity tier
// (3, 4 or 5) instead and their Good field is meaningless.
type Token struct {
	Good  deck.Good `json:"good"`
	Bonus int       `json:"bonus,omitempty"`
	Value int       `json:"value"`
}

// IsBonus reports whether the token came from a bonus pile
func (t Token) IsBonus() bool {
	return t.Bonus != 0
}

// TokenPile is a stack of tokens. The top of the pile is the end of the
// slice.
type TokenPile []Token

// PopTop removes and returns the top token of the pile. The second
// return value is false if the pile is empty; an empty pile is a normal
// terminal condition, not an error.
func (p *TokenPile) PopTop() (Token, bool) {
	pile := *p
	if len(pile) == 0 {
		return Token{}, false
	}
	top := pile[len(pile)-1]
	*p = pile[:len(pile)-1]
	return top, true
}

// Shuffle shuffles the pile in place using r
func (p TokenPile) Shuffle(r *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// goodsTokenValues lists each goods pile top-down: the first value is
// awarded on the first sale of that good.
var goodsTokenValues = map[deck.Good][]int{
	deck.Leather:  {4, 3, 2, 1, 1, 1, 1, 1, 1},
	deck.Spice:    {5, 3, 3, 2, 2, 1, 1},
	deck.Cloth:    {5, 3, 3, 2, 2, 1, 1},
	deck.Silver:   {5, 5, 5, 5, 5},
	deck.Gold:     {6, 6, 5, 5, 5},
	deck.Diamonds: {7, 7, 5, 5, 5},
}

// bonusTokenValues lists the composition of each bonus pile by
// sale-quantity tier. Order is irrelevant; piles are shuffled at setup.
var bonusTokenValues = map[int][]int{
	3: {1, 1, 2, 2, 2, 3, 3},
	4: {4, 4, 5, 5, 6, 6},
	5: {8, 8, 9, 10, 10},
}

// TokenPiles holds one goods-token pile per sellable good
type TokenPiles map[deck.Good]TokenPile

// NewTokenPiles builds the six goods-token piles with their fixed
// compositions, highest values on top.
func NewTokenPiles() TokenPiles {
	piles := TokenPiles{}
	for good, values := range goodsTokenValues {
		pile := make(TokenPile, 0, len(values))
		for i := len(values) - 1; i >= 0; i-- {
			pile = append(pile, Token{Good: good, Value: values[i]})
		}
		piles[good] = pile
	}
	return piles
}

// Pop removes the top token of the pile for the given good
func (tp TokenPiles) Pop(good deck.Good) (Token, bool) {
	pile := tp[good]
	token, ok := pile.PopTop()
	tp[good] = pile
	return token, ok
}

// BonusPiles holds one bonus-token pile per sale-quantity tier
type BonusPiles map[int]TokenPile

// NewBonusPiles builds the three bonus piles with their fixed
// compositions. Call Shuffle before play.
func NewBonusPiles() BonusPiles {
	piles := BonusPiles{}
	for tier, values := range bonusTokenValues {
		pile := make(TokenPile, 0, len(values))
		for _, v := range values {
			pile = append(pile, Token{Bonus: tier, Value: v})
		}
		piles[tier] = pile
	}
	return piles
}

// Shuffle shuffles each bonus pile in place using r
func (bp BonusPiles) Shuffle(r *rand.Rand) {
	for _, tier := range []int{3, 4, 5} {
		bp[tier].Shuffle(r)
	}
}

// Pop removes the top token of the pile for the given tier
func (bp BonusPiles) Pop(tier int) (Token, bool) {
	pile := bp[tier]
	token, ok := pile.PopTop()
	bp[tier] = pile
	return token, ok
}
