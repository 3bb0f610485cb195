package domain

// SortDirection is the direction of a sort clause.
type SortDirection string

const (
	// SortDirection_ASC sorts ascending.
	SortDirection_ASC SortDirection = "ASC"
	// SortDirection_DESC sorts descending.
	SortDirection_DESC SortDirection = "DESC"
)

// SortBy describes a sort clause on an externally named field. Field names
// arrive in the caller's camelCase convention and are translated to storage
// column names at the repository boundary.
type SortBy struct {
	Field     string
	Direction SortDirection
}

// Validate checks the sort clause shape.
func (s SortBy) Validate(entity EntityType) error {
	if s.Field == "" {
		return NewValidationErr(entity, "sort field cannot be empty")
	}
	if s.Direction != SortDirection_ASC && s.Direction != SortDirection_DESC {
		return NewValidationErr(entity, "sort direction must be either ASC or DESC")
	}
	return nil
}

// PageRequest describes range pagination for search queries.
type PageRequest struct {
	Page     int
	PageSize int
}

// Validate checks the pagination shape.
func (p PageRequest) Validate(entity EntityType) error {
	if p.Page <= 0 {
		return NewValidationErr(entity, "page must be greater than 0")
	}
	if p.PageSize <= 0 {
		return NewValidationErr(entity, "page_size must be greater than 0")
	}
	return nil
}

// Limit returns the row limit for the page.
func (p PageRequest) Limit() uint64 {
	return uint64(p.PageSize)
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.PageSize)
}

// SearchResult carries one page of matching aggregates plus the total number
// of rows matching the filters regardless of pagination.
type SearchResult[T any] struct {
	Items []T
	Total int64
}
