package view

type CartItem struct {
	ProductID string
	Name      string
	Slug      string
	ImageURL  string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type CartPage struct {
	Title    string
	Items    []CartItem
	Subtotal string
	Count    int
	Error    string
}

type WishlistItem struct {
	ProductID string
	Name      string
	Slug      string
	ImageURL  string
	Price     string
	InStock   bool
}

type WishlistPage struct {
	Title string
	Items []WishlistItem
	Count int
	Error string
}
