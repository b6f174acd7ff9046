package model

import (
	"fmt"
	"strings"
)

// PageContext names the screen that renders an event row.
type PageContext string

const (
	PageBrowse PageContext = "browse"
	PageUpdate PageContext = "update"
	PageDelete PageContext = "delete"
)

func (c PageContext) IsValid() bool {
	switch c {
	case PageBrowse, PageUpdate, PageDelete:
		return true
	}
	return false
}

func ParsePageContext(s string) (PageContext, error) {
	c := PageContext(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown page context %q", s)
	}
	return c, nil
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RolePublicUser Role = "public_user"
)

// FilterCriteria narrows an event listing. Empty fields (and "All") do not filter.
type FilterCriteria struct {
	SearchTerm string `json:"search" form:"search"`
	Location   string `json:"location" form:"location"`
	Type       string `json:"type" form:"type"`
	DateFrom   string `json:"dateFrom" form:"dateFrom"`
	DateTo     string `json:"dateTo" form:"dateTo"`
	Status     string `json:"status" form:"status"`
}

func isUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// HasFilters reports whether any criterion other than the search term is set.
func (f FilterCriteria) HasFilters() bool {
	for _, v := range []string{f.Location, f.Type, f.DateFrom, f.DateTo, f.Status} {
		if !isUnset(v) {
			return true
		}
	}
	return false
}

func (f FilterCriteria) IsEmpty() bool {
	return !f.HasFilters() && strings.TrimSpace(f.SearchTerm) == ""
}

// Page is one page of a remote listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}
