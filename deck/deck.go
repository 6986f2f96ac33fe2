package deck

import "math/rand"

// Deck represents an ordered deck of cards
type Deck []Good

// standardCounts is the fixed initial composition of a deck
var standardCounts = map[Good]int{
	Camel:    11,
	Leather:  10,
	Spice:    8,
	Cloth:    8,
	Silver:   6,
	Gold:     6,
	Diamonds: 6,
}

// DeckSize is the total number of cards in a fresh deck
const DeckSize = 52

// New creates a deck of cards with the standard composition
func New() Deck {
	cards := Deck{}
	for good := Good(0); good < NumGoods; good++ {
		for i := 0; i < standardCounts[good]; i++ {
			cards = append(cards, good)
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards in place using r
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// DrawTop removes and returns the top card of the deck.
// The second return value is false if the deck is empty.
func (d *Deck) DrawTop() (Good, bool) {
	cards := *d
	if len(cards) == 0 {
		return 0, false
	}
	top := cards[len(cards)-1]
	*d = cards[:len(cards)-1]
	return top, true
}

// RemoveFirstMatching removes the first card of the given good from the
// deck, wherever it sits. Used only to seed the market with camels.
func (d *Deck) RemoveFirstMatching(good Good) (Good, bool) {
	cards := *d
	for i, c := range cards {
		if c == good {
			*d = append(cards[:i], cards[i+1:]...)
			return c, true
		}
	}
	return 0, false
}
