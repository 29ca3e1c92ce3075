package response_models

type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	Total       int64 `json:"total"`
	HasMore     bool  `json:"has_more"`
}
