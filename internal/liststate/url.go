package liststate

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

const (
	ParamPage     = "page"
	ParamPageSize = "pageSize"
	ParamSearch   = "search"
	ParamSort     = "sort"
	ParamOrder    = "order"
)

// FromQuery restores the view from URL parameters. page is the
// zero-based page index; missing or invalid values fall back to the
// first page of DefaultPageSize rows.
func FromQuery(q url.Values) ViewState {
	page, err := strconv.Atoi(q.Get(ParamPage))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(q.Get(ParamPageSize))
	if err != nil {
		size = DefaultPageSize
	}

	return ViewState{
		PageIndex: page,
		PageSize:  clampPageSize(size),
		Search:    q.Get(ParamSearch),
	}
}

// SortFromQuery reads the optional sort column and order. Unknown
// columns mean no sorting.
func SortFromQuery(q url.Values) Sort {
	c := Column(q.Get(ParamSort))
	if !slices.Contains(Columns, c) {
		return Sort{}
	}
	return Sort{Column: c, Desc: q.Get(ParamOrder) == "desc"}
}

// Query is the URL projection of v. An empty search is left out.
func (v ViewState) Query() url.Values {
	q := url.Values{}
	q.Set(ParamPage, strconv.Itoa(v.PageIndex))
	q.Set(ParamPageSize, strconv.Itoa(v.PageSize))
	if v.Search != "" {
		q.Set(ParamSearch, v.Search)
	}
	return q
}

// URL joins path with the view's query string.
func (v ViewState) URL(path string) string {
	return path + "?" + v.Query().Encode()
}

// WireQuery is what the backend is asked for: pages are 1-based there.
func (v ViewState) WireQuery() domain.PageQuery {
	return domain.PageQuery{
		Page:   v.PageIndex + 1,
		Limit:  v.PageSize,
		Search: strings.TrimSpace(v.Search),
	}
}

// MergeQuery writes the view into q, keeping unrelated parameters.
func (v ViewState) MergeQuery(q url.Values) url.Values {
	out := url.Values{}
	for k, vals := range q {
		out[k] = append([]string(nil), vals...)
	}
	out.Del(ParamSearch)
	for k, vals := range v.Query() {
		out[k] = vals
	}
	return out
}
