package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// PageRequest identifies a 1-based page of a result set.
type PageRequest struct {
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps the request to valid values for cfg.
func (r *PageRequest) Normalize(cfg Config) {
	if r.PageNum < 1 {
		r.PageNum = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset calculates the number of items to skip. It saturates at
// math.MaxInt instead of wrapping for very large page numbers.
func (r *PageRequest) Offset() int {
	if r.PageSize > 0 && r.PageNum-1 > math.MaxInt/r.PageSize {
		return math.MaxInt
	}
	return (r.PageNum - 1) * r.PageSize
}

// PageRequestFromQuery reads pageNum and pageSize from query values and
// normalizes the result. Missing or malformed values fall back to defaults.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	pageNum, _ := strconv.Atoi(values.Get("pageNum"))
	pageSize, _ := strconv.Atoi(values.Get("pageSize"))

	req := PageRequest{
		PageNum:  pageNum,
		PageSize: pageSize,
	}

	req.Normalize(cfg)
	return req
}

// Slice returns the items that fall on the requested page. A page past the
// end yields an empty, non-nil slice.
func Slice[T any](items []T, req PageRequest) []T {
	start := req.Offset()
	if start >= len(items) || start < 0 {
		return []T{}
	}

	end := min(start+req.PageSize, len(items))
	return items[start:end]
}
