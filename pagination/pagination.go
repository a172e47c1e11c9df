package pagination

import "strconv"

const DefaultPerPage = 10

// Page is one slice of an ordered collection plus the metadata needed to
// render pager controls.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"number"`
	PerPage     int  `json:"per_page"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Paginate slices items into pages of perPage and returns the requested one.
// Out-of-range numbers clamp: below 1 becomes 1, past the end becomes the
// last page. An empty collection yields a single empty page.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	total := len(items)
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	from := (number - 1) * perPage
	to := from + perPage
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}
	return Page[T]{
		Items:       items[from:to],
		Number:      number,
		PerPage:     perPage,
		TotalItems:  total,
		TotalPages:  pages,
		HasPrevious: number > 1,
		HasNext:     number < pages,
	}
}

// ParsePageNumber interprets a page query parameter. Missing or non-numeric
// input means page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
