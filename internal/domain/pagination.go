package domain

import "math"

// MaxPage is the largest page number accepted. It keeps the computed offset
// well inside int64 for any allowed page size.
const MaxPage = math.MaxInt32

// PageRequest is a normalised page/pageSize pair.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest normalises raw pagination input.
//
// A zero page or pageSize means "not supplied" and selects the default (page 1,
// defaultSize). The result is then clamped so that 1 <= Page <= MaxPage and
// 1 <= PageSize <= maxSize.
func NewPageRequest(page, pageSize, defaultSize, maxSize int) PageRequest {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultSize
	}

	page = clamp(page, 1, MaxPage)
	if maxSize < 1 {
		maxSize = 1
	}
	pageSize = clamp(pageSize, 1, maxSize)

	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset returns the number of rows to skip: (Page-1)*PageSize.
func (p PageRequest) Offset() int64 {
	if p.Page < 1 {
		return 0
	}
	return int64(p.Page-1) * int64(p.PageSize)
}

// Limit returns the number of rows in one page.
func (p PageRequest) Limit() int64 {
	return int64(p.PageSize)
}

// TotalPages returns ceil(count/pageSize), or 0 when nothing matches.
func TotalPages(count int64, pageSize int) int64 {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (count + size - 1) / size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
