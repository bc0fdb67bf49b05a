// Package pagination turns raw page/limit strings into bounded skip/take
// values and builds the paginated response envelope.
package pagination

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Rules configures how one resource validates its page parameters.
type Rules struct {
	// MaxLimit caps limit when positive.
	MaxLimit int
	// Message, when set, replaces every per-parameter message.
	Message string
}

// Error is a rejected page/limit pair. Message is safe to return to clients.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Skip is the number of rows before the first row of the page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Parse validates page and limit. Empty strings take the defaults.
func Parse(page, limit string, rules Rules) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}
	var problems []string

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			problems = append(problems, "Page must be a valid positive number")
		}
		p.Page = n
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || (rules.MaxLimit > 0 && n > rules.MaxLimit) {
			if rules.MaxLimit > 0 {
				problems = append(problems, fmt.Sprintf("Limit must be between 1 and %d", rules.MaxLimit))
			} else {
				problems = append(problems, "Limit must be a valid positive number")
			}
		}
		p.Limit = n
	}

	// Skip must stay representable as a non-negative OFFSET.
	if len(problems) == 0 && p.Page-1 > math.MaxInt/p.Limit {
		problems = append(problems, "Page must be a valid positive number")
	}

	if len(problems) == 0 {
		return p, nil
	}
	if rules.Message != "" {
		return Params{}, &Error{Message: rules.Message}
	}
	return Params{}, &Error{Message: strings.Join(problems, ", ")}
}

// TotalPages is ceil(total/limit), never below 1.
func TotalPages(total, limit int) int {
	if limit < 1 || total <= limit {
		return 1
	}
	return (total + limit - 1) / limit
}

// Page is the paginated response envelope.
type Page[T any] struct {
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Data        []T `json:"data"`
}

// NewPage wraps one page of rows. A nil slice is rendered as [].
func NewPage[T any](data []T, total int, p Params) *Page[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return &Page[T]{
		TotalItems:  total,
		TotalPages:  TotalPages(total, p.Limit),
		CurrentPage: p.Page,
		Data:        data,
	}
}
