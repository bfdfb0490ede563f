package response

// ListResponse wraps paginated collection results.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func NewListResponse[T any](items []T, total int64, limit, offset int) *ListResponse[T] {
	return &ListResponse[T]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
}
