package types

import "math"

const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// PageWindow is the clamped (skip, take) pair a page request resolves to
type PageWindow struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

// NewPageWindow coerces any page/size pair into a bounded window.
// A nil page means 0 and a nil size means DefaultPageSize. Nothing is rejected.
func NewPageWindow(page, size *int) PageWindow {
	take := DefaultPageSize
	if size != nil {
		take = min(max(*size, MinPageSize), MaxPageSize)
	}

	// pages past math.MaxInt/take saturate instead of wrapping negative
	skip := 0
	if page != nil && *page > 0 {
		skip = min(*page, math.MaxInt/take) * take
	}

	return PageWindow{Skip: skip, Take: take}
}

// Page returns the zero based page index the window starts at
func (w PageWindow) Page() int {
	if w.Take == 0 {
		return 0
	}
	return w.Skip / w.Take
}
