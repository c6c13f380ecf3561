package dto

import "fmt"

// DefaultPageSize is the page size used by every list endpoint unless configured.
const DefaultPageSize = 10

// Page holds the bounds of one requested page.
type Page struct {
	Number     int
	TotalPages int
	Size       int
	TotalCount int64
}

// Paginate clamps page into [1, totalPages] where totalPages is at least 1.
func Paginate(page int, totalCount int64, pageSize int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Page{
		Number:     page,
		TotalPages: totalPages,
		Size:       pageSize,
		TotalCount: totalCount,
	}
}

// Offset is the number of rows to skip before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Links are hypermedia pointers keyed by relation name.
type Links map[string]string

// PageLinks builds the navigation links for p under basePath (e.g. "/games").
func PageLinks(basePath string, p Page) Links {
	links := Links{}
	if p.Number < p.TotalPages {
		links["nextPage"] = fmt.Sprintf("%s?page=%d", basePath, p.Number+1)
		links["lastPage"] = fmt.Sprintf("%s?page=%d", basePath, p.TotalPages)
	}
	if p.Number > 1 {
		links["prevPage"] = fmt.Sprintf("%s?page=%d", basePath, p.Number-1)
		links["firstPage"] = fmt.Sprintf("%s?page=1", basePath)
	}
	return links
}

// PageResponse is the body of every list endpoint.
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	TotalPages int   `json:"totalPages"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Links      Links `json:"links"`
}

// NewPageResponse wraps items fetched for p.
func NewPageResponse[T any](items []T, p Page, basePath string) PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PageResponse[T]{
		Items:      items,
		PageNumber: p.Number,
		TotalPages: p.TotalPages,
		PageSize:   p.Size,
		TotalCount: p.TotalCount,
		Links:      PageLinks(basePath, p),
	}
}

// CreatedResponse is returned by every POST that creates a row.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Links   Links  `json:"links"`
	Message string `json:"message,omitempty"`
}

// LinksResponse is returned by successful updates.
type LinksResponse struct {
	Links Links `json:"links"`
}
