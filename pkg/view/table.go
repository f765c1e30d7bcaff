package view

// Pagination is the display form of a fetched page: 1-based numbers and
// the "Showing X to Y of Z" line, precomputed so templates stay dumb.
type Pagination struct {
	Page       int // 0-based, as sent back in query strings
	Display    int
	TotalPages int
	PageSize   int
	HasPrev    bool
	HasNext    bool
	PrevPage   int // 0-based, ready for the query string
	NextPage   int
	Label      string
}

type Row struct {
	ID    string
	Cells []string
}

// RowAction is an extra per-row button, POSTed to
// BasePath/{id}/{Suffix}.
type RowAction struct {
	Label  string
	Suffix string
}

// Table is the one view model every dashboard list screen renders.
type Table struct {
	Title      string
	BasePath   string
	Headers    []string
	Rows       []Row
	Pagination Pagination
	Filter     string
	Error      string
	Loading    bool
	CanCreate  bool
	CanToggle  bool
	CanDelete  bool
	Actions    []RowAction
}
