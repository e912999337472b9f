// Package deck holds the static deck catalog. Decks are routes in the
// application, not database rows; the database only stores grants that
// reference a deck id by string, so this list must stay in sync with any
// remotely stored ids by convention.
package deck

type Category string

const (
	CategoryInvestor Category = "investor"
	CategoryPartner  Category = "partner"
)

type Status string

const (
	StatusLive  Status = "live"
	StatusDraft Status = "draft"
)

type Deck struct {
	ID          string
	Title       string
	Route       string
	Category    Category
	Description string
	Status      Status
}

var catalog = []Deck{
	{ID: "investor-deck", Title: "Investor Deck", Route: "/decks/investor", Category: CategoryInvestor, Description: "Core fundraising narrative and metrics.", Status: StatusLive},
	{ID: "financial-model", Title: "Financial Model", Route: "/decks/financials", Category: CategoryInvestor, Description: "Three-year operating model and assumptions.", Status: StatusLive},
	{ID: "market-landscape", Title: "Market Landscape", Route: "/decks/market", Category: CategoryInvestor, Description: "Competitive positioning and market sizing.", Status: StatusLive},
	{ID: "partner-overview", Title: "Partner Overview", Route: "/decks/partners", Category: CategoryPartner, Description: "Integration and co-sell program summary.", Status: StatusLive},
	{ID: "product-roadmap", Title: "Product Roadmap", Route: "/decks/roadmap", Category: CategoryPartner, Description: "Upcoming releases and platform direction.", Status: StatusDraft},
}

// All returns the catalog in declaration order.
func All() []Deck {
	out := make([]Deck, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a deck by its string id.
func ByID(id string) (Deck, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Deck{}, false
}

// IDs returns every deck id in the catalog.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, d := range catalog {
		ids = append(ids, d.ID)
	}
	return ids
}
