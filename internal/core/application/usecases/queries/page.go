// Package queries contains the read use cases of the fleet service.
// Query handlers read straight from the database into read models and never go through
// the repositories or the unit of work.
package queries

import (
	"medidrone/internal/pkg/errs"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// Page is an offset/limit window over a list ordered by id.
type Page struct {
	offset int
	limit  int
}

// NewPage validates offset >= 0 and 1 <= limit <= MaxPageLimit.
//
// Example:
//
//	page, err := NewPage(0, DefaultPageLimit)
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{offset: offset, limit: limit}, nil
}

func (p Page) Offset() int {
	return p.offset
}

func (p Page) Limit() int {
	return p.limit
}
