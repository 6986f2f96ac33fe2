package deck

// Good represents one of the seven card categories
type Good int

var goodNames = []string{"Camel", "Leather", "Spice", "Cloth", "Silver", "Gold", "Diamonds"}

const (
	Camel Good = iota
	Leather
	Spice
	Cloth
	Silver
	Gold
	Diamonds
)

// NumGoods is the number of distinct good types, camels included
const NumGoods = 7

func (g Good) String() string {
	if g < 0 || int(g) >= NumGoods {
		return ""
	}
	return goodNames[g]
}

// Precious reports whether a good cannot be sold as a single unit
func (g Good) Precious() bool {
	return g == Silver || g == Gold || g == Diamonds
}

// SaleGoods returns the six sellable good types, in ascending value tier
func SaleGoods() []Good {
	return []Good{Leather, Spice, Cloth, Silver, Gold, Diamonds}
}
