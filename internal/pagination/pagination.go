package pagination

import (
	"gorm.io/gorm"
)

const (
	// MinPage is the lowest accepted page number
	MinPage = 1
	// MinSize is the lowest accepted page size
	MinSize = 1
	// MaxSize caps the page size for any list request
	MaxSize = 100
)

// Page is the envelope returned by every paginated list endpoint
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// Normalize coerces page and size into their accepted ranges.
// Out-of-range values are silently clamped, never rejected.
func Normalize(page, size int) (int, int) {
	if page < MinPage {
		page = MinPage
	}
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return page, size
}

// PageCount computes ceil(total/size); an empty collection has zero pages
func PageCount(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

// Paginate slices an already filtered and ordered query into a page.
// A page beyond the last one yields an empty item list with correct totals.
func Paginate[T any](query *gorm.DB, page, size int) (*Page[T], error) {
	page, size = Normalize(page, size)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, size)
	offset := (page - 1) * size
	if err := query.Offset(offset).Limit(size).Find(&items).Error; err != nil {
		return nil, err
	}

	return &Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: PageCount(total, size),
	}, nil
}
