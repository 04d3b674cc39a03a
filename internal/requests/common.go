package requests

// PageQuery carries the standard pagination query parameters
type PageQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Defaults fills in the standard page and size when absent from the query
func (q *PageQuery) Defaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Size == 0 {
		q.Size = 10
	}
}
