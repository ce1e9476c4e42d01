package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Pager is the page position within a search result set.
type Pager struct {
	Current    int
	TotalCount int
	PerPage    int
}

// New clamps current to at least 1.
func New(current, totalCount, perPage int) Pager {
	if current < 1 {
		current = 1
	}
	return Pager{Current: current, TotalCount: totalCount, PerPage: perPage}
}

// TotalPages is ceil(TotalCount / PerPage).
func (p Pager) TotalPages() int {
	if p.PerPage <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount + p.PerPage - 1) / p.PerPage
}

func (p Pager) HasNext() bool {
	return p.Current < p.TotalPages()
}

func (p Pager) HasPrev() bool {
	return p.Current > 1
}

// Next returns the following page, or p unchanged on the last page.
func (p Pager) Next() Pager {
	if p.HasNext() {
		p.Current++
	}
	return p
}

// Prev returns the preceding page, or p unchanged on the first page.
func (p Pager) Prev() Pager {
	if p.HasPrev() {
		p.Current--
	}
	return p
}

func (p Pager) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Current, p.TotalPages())
}

// PageURL rewrites the page parameter and keeps everything else.
func PageURL(query url.Values, page int) string {
	params := url.Values{}
	for k, v := range query {
		params[k] = append([]string(nil), v...)
	}
	params.Set("page", strconv.Itoa(page))
	return "/?" + params.Encode()
}

// ParsePage reads a page parameter, defaulting to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
