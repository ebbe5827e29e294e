package wardrobe

// Section describes one browsable closet group and its quick filters.
type Section struct {
	Title    string   `json:"title"`
	Key      string   `json:"key"`
	Category string   `json:"category"`
	Filters  []string `json:"filters"`
}

// Catalog lists every attribute value an item may carry.
type Catalog struct {
	Categories []string  `json:"categories"`
	Styles     []string  `json:"styles"`
	Warmth     []string  `json:"warmth"`
	Weather    []string  `json:"weather"`
	Sections   []Section `json:"sections"`
}

var (
	categories = []string{"Tops", "Bottoms", "Shoes", "Outerwear", "Accessories"}
	styles     = []string{"Casual", "Formal", "Sporty", "Streetwear", "Vintage"}
	warmth     = []string{"Light", "Medium", "Heavy"}
	weather    = []string{"All Weather", "Rain-proof", "Windproof", "Summer Only", "Winter Only"}

	sections = []Section{
		{Title: "Top Wear", Key: "top", Category: "Tops", Filters: []string{"All", "Shirt", "Jacket", "Hoddie", "Denim"}},
		{Title: "Bottom Wear", Key: "bottom", Category: "Bottoms", Filters: []string{"All", "Chinos", "Baggie", "Trouser", "Denim"}},
		{Title: "Accessories", Key: "accessories", Category: "Accessories", Filters: []string{"All", "Watch", "Wallet", "Chains", "Denim"}},
		{Title: "Shoes", Key: "shoes", Category: "Shoes", Filters: []string{"All", "Sneakers", "Boots", "Loafers", "Sandals"}},
		{Title: "Outerwear", Key: "outerwear", Category: "Outerwear", Filters: []string{"All", "Jacket", "Coat", "Blazer", "Vest"}},
	}
)

// DefaultCatalog returns a fresh copy of the attribute catalogs.
func DefaultCatalog() Catalog {
	out := Catalog{
		Categories: append([]string(nil), categories...),
		Styles:     append([]string(nil), styles...),
		Warmth:     append([]string(nil), warmth...),
		Weather:    append([]string(nil), weather...),
		Sections:   make([]Section, len(sections)),
	}
	for i, s := range sections {
		s.Filters = append([]string(nil), s.Filters...)
		out.Sections[i] = s
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
