package view

type HeroBanner struct {
	Title    string
	Subtitle string
	ImageURL string
	LinkURL  string
}

// DealCard carries both countdown renderings; the card layout shows the
// day+hour form, the table layout the hour-capped one.
type DealCard struct {
	ID            string
	ProductID     string
	Name          string
	Slug          string
	ImageURL      string
	Price         string
	DealPrice     string
	Discount      int
	CountdownCard string // e.g. "1d 02:00:15"
	CountdownHMS  string // e.g. "26:00:15" capped at 24h -> "02:00:15"
	SoldOut       bool
	CTALabel      string // "Add to Cart" or "Out of Stock"
}

type HomePage struct {
	Title  string
	Heroes []HeroBanner
	Deals  []DealCard
	Error  string
}
