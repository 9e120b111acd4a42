package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps Offset from overflowing at any allowed page size.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// PageRequest is a 1-based page number and page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request into valid bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes a returned page.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination builds the pagination block for a page of total items.
func NewPagination(p PageRequest, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, Pages: pages}
}

// Page is a slice of items with its pagination block.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
