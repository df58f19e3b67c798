// Package liststate holds the admin booking list view: server-driven
// pagination, a debounced search term and a URL projection of both.
//
// State changes go through Reduce; the Synchronizer owns a Model, feeds
// it actions and issues one backend fetch whenever the page index, page
// size or committed search term change.
package liststate

import (
	"slices"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

const DefaultPageSize = 10

// PageSizes are the sizes offered by the page size selector.
var PageSizes = []int{10, 20, 30, 40, 50}

// ViewState is the shareable part of the list view.
type ViewState struct {
	PageIndex  int    `json:"page_index"`
	PageSize   int    `json:"page_size"`
	Search     string `json:"search"`
	TotalPages int    `json:"total_pages"`
}

type fetchKey struct {
	pageIndex int
	pageSize  int
	search    string
}

func (v ViewState) key() fetchKey {
	return fetchKey{pageIndex: v.PageIndex, pageSize: v.PageSize, search: v.Search}
}

func (v ViewState) CanPrev() bool { return v.PageIndex > 0 }

func (v ViewState) CanNext() bool { return v.PageIndex < v.TotalPages-1 }

func (v ViewState) lastIndex() int {
	if v.TotalPages <= 0 {
		return 0
	}
	return v.TotalPages - 1
}

// Model is everything the list view renders.
type Model struct {
	View         ViewState
	Input        string
	Sort         Sort
	Rows         []domain.Booking
	Loading      bool
	Err          string
	Unauthorized bool
}

// Action is a state transition understood by Reduce.
type Action interface {
	apply(m Model) Model
}

// Reduce returns the model after a. The input model is not modified.
func Reduce(m Model, a Action) Model {
	m.Rows = slices.Clone(m.Rows)
	return a.apply(m)
}

type GotoPage struct{ Index int }

func (a GotoPage) apply(m Model) Model {
	idx := a.Index
	if m.View.TotalPages > 0 && idx > m.View.lastIndex() {
		idx = m.View.lastIndex()
	}
	if idx < 0 {
		idx = 0
	}
	m.View.PageIndex = idx
	return m
}

type NextPage struct{}

func (NextPage) apply(m Model) Model {
	if !m.View.CanNext() {
		return m
	}
	m.View.PageIndex++
	return m
}

type PrevPage struct{}

func (PrevPage) apply(m Model) Model {
	if !m.View.CanPrev() {
		return m
	}
	m.View.PageIndex--
	return m
}

type FirstPage struct{}

func (FirstPage) apply(m Model) Model {
	m.View.PageIndex = 0
	return m
}

type LastPage struct{}

func (LastPage) apply(m Model) Model {
	m.View.PageIndex = m.View.lastIndex()
	return m
}

// SetPageSize changes the page size and keeps the first visible row on
// screen.
type SetPageSize struct{ Size int }

func (a SetPageSize) apply(m Model) Model {
	size := clampPageSize(a.Size)
	if size == m.View.PageSize {
		return m
	}
	firstRow := m.View.PageIndex * m.View.PageSize
	m.View.PageSize = size
	m.View.PageIndex = firstRow / size
	return m
}

// CommitSearch is the debounced search term. A different term always
// starts again from the first page.
type CommitSearch struct{ Term string }

func (a CommitSearch) apply(m Model) Model {
	if a.Term == m.View.Search {
		return m
	}
	m.View.Search = a.Term
	m.View.PageIndex = 0
	return m
}

// Input records raw keystrokes; it never triggers a fetch by itself.
type Input struct{ Text string }

func (a Input) apply(m Model) Model {
	m.Input = a.Text
	return m
}

// SortBy cycles a column through ascending, descending and unsorted.
type SortBy struct{ Column Column }

func (a SortBy) apply(m Model) Model {
	m.Sort = m.Sort.toggle(a.Column)
	return m
}

type fetchStarted struct{}

func (fetchStarted) apply(m Model) Model {
	m.Loading = true
	m.Err = ""
	m.Unauthorized = false
	return m
}

type pageLoaded struct{ page *domain.BookingPage }

func (a pageLoaded) apply(m Model) Model {
	m.Loading = false
	m.Err = ""
	m.Unauthorized = false
	m.Rows = slices.Clone(a.page.Bookings)
	m.View.TotalPages = a.page.TotalPages
	return m
}

type loadFailed struct {
	message      string
	unauthorized bool
}

func (a loadFailed) apply(m Model) Model {
	m.Loading = false
	m.Err = a.message
	m.Unauthorized = a.unauthorized
	return m
}

type unauthorized struct{}

func (unauthorized) apply(m Model) Model {
	m.Unauthorized = true
	return m
}

type rowDeleted struct{ id string }

func (a rowDeleted) apply(m Model) Model {
	m.Rows = slices.DeleteFunc(m.Rows, func(b domain.Booking) bool { return b.ID == a.id })
	return m
}

// clampPageSize maps sizes the selector does not offer to DefaultPageSize.
func clampPageSize(size int) int {
	if !slices.Contains(PageSizes, size) {
		return DefaultPageSize
	}
	return size
}
