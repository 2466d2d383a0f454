package dto

// DefaultLimit is the default number of items per page.
const DefaultLimit = 20

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 100

// PaginationRequest represents offset/limit pagination parameters from the request.
type PaginationRequest struct {
	// Offset is the number of items to skip from the start of the result set.
	Offset int `form:"offset" validate:"omitempty,gte=0"`

	// Limit is the maximum number of items to return (1-100, default 20).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// GetOffset returns the offset clamped to zero.
func (p *PaginationRequest) GetOffset() int {
	if p.Offset < 0 {
		return 0
	}

	return p.Offset
}

// PaginatedResponse is a generic paginated response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// Total is the total number of items across all pages.
	Total int `json:"total"`

	// HasMore indicates whether there are more items after this page.
	HasMore bool `json:"hasMore"`
}

// NewPaginatedResponse creates a paginated response from a page of items
// and the total count reported by the repository.
func NewPaginatedResponse[T any](items []T, offset, total int) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PaginatedResponse[T]{
		Items:   items,
		Total:   total,
		HasMore: offset+len(items) < total,
	}
}
