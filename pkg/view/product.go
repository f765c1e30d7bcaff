package view

type ProductCard struct {
	ID         string
	Name       string
	Slug       string
	ImageURL   string
	Price      string
	Category   string
	Brand      string
	InStock    bool
	Wishlisted bool
}

type ProductDetail struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	Brand       string
	Stock       int
	InStock     bool
}

type ProductsPage struct {
	Title      string
	Products   []ProductCard
	Pagination Pagination
	Keyword    string
	Category   string
	Error      string
}
