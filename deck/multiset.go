package deck

import (
	"fmt"
	"strings"
)

// Multiset is a collection of cards counted by good type. Market and
// player hands are multisets: cards of the same good are fungible.
type Multiset [NumGoods]int

// NewMultiset builds a multiset from individual cards
func NewMultiset(goods ...Good) Multiset {
	var m Multiset
	for _, g := range goods {
		m.Add(g, 1)
	}
	return m
}

// Count returns the number of cards of the given good
func (m *Multiset) Count(good Good) int {
	return m[good]
}

// Size returns the total number of cards
func (m *Multiset) Size() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Add adds n cards of the given good. Negative n is ignored.
func (m *Multiset) Add(good Good, n int) {
	if n < 0 {
		return
	}
	m[good] += n
}

// Remove removes n cards of the given good. It reports whether the
// removal was possible; counts never go negative.
func (m *Multiset) Remove(good Good, n int) bool {
	if n < 0 || m[good] < n {
		return false
	}
	m[good] -= n
	return true
}

// Contains reports whether other is a sub-multiset of m
func (m *Multiset) Contains(other Multiset) bool {
	for good, n := range other {
		if m[good] < n {
			return false
		}
	}
	return true
}

// AddAll adds every card in other to m
func (m *Multiset) AddAll(other Multiset) {
	for good, n := range other {
		m[good] += n
	}
}

// RemoveAll removes every card in other from m. It reports whether the
// removal was possible; on failure m is unchanged.
func (m *Multiset) RemoveAll(other Multiset) bool {
	if !m.Contains(other) {
		return false
	}
	for good, n := range other {
		m[good] -= n
	}
	return true
}

func (m Multiset) String() string {
	parts := []string{}
	for good, n := range m {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", Good(good), n))
		}
	}
	return strings.Join(parts, ", ")
}
