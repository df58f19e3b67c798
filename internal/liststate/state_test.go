package liststate

import (
	"net/url"
	"testing"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery_RestoresSharedView(t *testing.T) {
	q, _ := url.ParseQuery("search=Smith&page=2&pageSize=20")

	v := FromQuery(q)

	assert.Equal(t, ViewState{PageIndex: 2, PageSize: 20, Search: "Smith"}, v)
	assert.Equal(t, domain.PageQuery{Page: 3, Limit: 20, Search: "Smith"}, v.WireQuery())
}

func TestFromQuery_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ViewState
	}{
		{"empty", "", ViewState{PageIndex: 0, PageSize: DefaultPageSize}},
		{"garbage", "page=abc&pageSize=xyz", ViewState{PageIndex: 0, PageSize: DefaultPageSize}},
		{"negative", "page=-3&pageSize=-1", ViewState{PageIndex: 0, PageSize: DefaultPageSize}},
		{"huge size", "pageSize=100000", ViewState{PageIndex: 0, PageSize: DefaultPageSize}},
		{"size not offered", "page=1&pageSize=25", ViewState{PageIndex: 1, PageSize: DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			assert.Equal(t, tt.want, FromQuery(q))
		})
	}
}

func TestViewState_QueryRoundTrip(t *testing.T) {
	views := []ViewState{
		{PageIndex: 0, PageSize: 10},
		{PageIndex: 4, PageSize: 50, Search: "Ford Focus"},
		{PageIndex: 1, PageSize: 20, Search: "a&b=c"},
	}

	for _, v := range views {
		restored := FromQuery(v.Query())
		assert.Equal(t, v, restored)
		assert.Equal(t, v.WireQuery(), restored.WireQuery())
	}
}

func TestViewState_EmptySearchLeftOutOfURL(t *testing.T) {
	v := ViewState{PageIndex: 0, PageSize: 10}

	assert.False(t, v.Query().Has(ParamSearch))
	assert.Equal(t, "/admin/bookings?page=0&pageSize=10", v.URL("/admin/bookings"))
}

func TestViewState_MergeQueryKeepsOtherParams(t *testing.T) {
	in := url.Values{"tab": {"refunds"}, ParamSearch: {"old"}}

	out := ViewState{PageIndex: 1, PageSize: 10}.MergeQuery(in)

	assert.Equal(t, "refunds", out.Get("tab"))
	assert.False(t, out.Has(ParamSearch))
	assert.Equal(t, "1", out.Get(ParamPage))
}

func TestWireQuery_TrimsSearch(t *testing.T) {
	v := ViewState{PageSize: 10, Search: "  smith "}
	assert.Equal(t, "smith", v.WireQuery().Search)
}

func TestReduce_CommitSearchResetsPage(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 3, PageSize: 10, TotalPages: 8}}

	m = Reduce(m, CommitSearch{Term: "Smith"})

	assert.Equal(t, 0, m.View.PageIndex)
	assert.Equal(t, "Smith", m.View.Search)
}

func TestReduce_SameSearchKeepsPage(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 3, PageSize: 10, Search: "Smith", TotalPages: 8}}

	m = Reduce(m, CommitSearch{Term: "Smith"})

	assert.Equal(t, 3, m.View.PageIndex)
}

func TestReduce_Pagination(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 0, PageSize: 10, TotalPages: 3}}

	m = Reduce(m, PrevPage{})
	assert.Equal(t, 0, m.View.PageIndex)

	m = Reduce(m, NextPage{})
	m = Reduce(m, NextPage{})
	m = Reduce(m, NextPage{})
	assert.Equal(t, 2, m.View.PageIndex)

	m = Reduce(m, FirstPage{})
	assert.Equal(t, 0, m.View.PageIndex)

	m = Reduce(m, LastPage{})
	assert.Equal(t, 2, m.View.PageIndex)

	m = Reduce(m, GotoPage{Index: 99})
	assert.Equal(t, 2, m.View.PageIndex)

	m = Reduce(m, GotoPage{Index: -1})
	assert.Equal(t, 0, m.View.PageIndex)
}

func TestReduce_GotoPageBeforeTotalsKnown(t *testing.T) {
	m := Model{View: ViewState{PageSize: 10}}

	m = Reduce(m, GotoPage{Index: 5})

	assert.Equal(t, 5, m.View.PageIndex)
}

func TestReduce_SetPageSizeKeepsFirstRow(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 3, PageSize: 10, TotalPages: 10}}

	m = Reduce(m, SetPageSize{Size: 20})

	assert.Equal(t, 20, m.View.PageSize)
	assert.Equal(t, 1, m.View.PageIndex)
}

func TestReduce_SetPageSizeNotOfferedFallsBack(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 0, PageSize: 20}}

	m = Reduce(m, SetPageSize{Size: 25})

	assert.Equal(t, DefaultPageSize, m.View.PageSize)
}

func TestReduce_NewFetchClearsUnauthorized(t *testing.T) {
	m := Model{View: ViewState{PageSize: 10}}
	m = Reduce(m, loadFailed{message: "Unauthorized request", unauthorized: true})
	require.True(t, m.Unauthorized)

	m = Reduce(m, fetchStarted{})

	assert.False(t, m.Unauthorized)
	assert.True(t, m.Loading)
	assert.Empty(t, m.Err)
}

func TestReduce_DoesNotShareRows(t *testing.T) {
	m := Model{Rows: []domain.Booking{{ID: "a"}, {ID: "b"}}}

	next := Reduce(m, rowDeleted{id: "a"})

	assert.Len(t, m.Rows, 2)
	assert.Equal(t, []domain.Booking{{ID: "b"}}, next.Rows)
}

func TestReduce_InputDoesNotChangeView(t *testing.T) {
	m := Model{View: ViewState{PageIndex: 2, PageSize: 10}}

	next := Reduce(m, Input{Text: "Smi"})

	assert.Equal(t, m.View, next.View)
	assert.Equal(t, "Smi", next.Input)
}

func TestSortFromQuery(t *testing.T) {
	assert.Equal(t, Sort{Column: ColumnTotal, Desc: true},
		SortFromQuery(url.Values{"sort": {"total"}, "order": {"desc"}}))
	assert.Equal(t, Sort{Column: ColumnName},
		SortFromQuery(url.Values{"sort": {"name"}}))
	assert.Equal(t, Sort{}, SortFromQuery(url.Values{"sort": {"password"}}))
}
