package view

type OrderListItem struct {
	ID     string
	Number string
	Placed string // absolute date
	Ago    string // relative form shown next to it
	Status string
	Total  string
	Items  int
}

type OrdersPage struct {
	Title      string
	Orders     []OrderListItem
	Pagination Pagination
	Error      string
}

type AdminOrdersPage struct {
	Table        Table
	Statuses     []string
	FilterStatus string
	FilterFrom   string
	FilterTo     string
	FilterSearch string
}
