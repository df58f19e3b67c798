package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stpnv0/MOTBooker/internal/liststate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*pflag.FlagSet, options) {
	t.Helper()
	var opts options
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntVar(&opts.page, "page", 0, "")
	fs.IntVar(&opts.pageSize, "page-size", liststate.DefaultPageSize, "")
	fs.StringVar(&opts.search, "search", "", "")
	fs.StringVar(&opts.view, "view", "", "")
	require.NoError(t, fs.Parse(args))
	return fs, opts
}

func TestInitialView_FromSharedURL(t *testing.T) {
	fs, opts := parse(t, "--view", "http://localhost:8080/admin/bookings?page=2&pageSize=20&search=Smith")

	view, err := initialView(fs, opts)
	require.NoError(t, err)
	assert.Equal(t, liststate.ViewState{PageIndex: 2, PageSize: 20, Search: "Smith"}, view)
}

func TestInitialView_FlagsOverrideView(t *testing.T) {
	fs, opts := parse(t, "--view", "page=2&pageSize=20", "--page", "0", "--search", "Jones")

	view, err := initialView(fs, opts)
	require.NoError(t, err)
	assert.Equal(t, liststate.ViewState{PageIndex: 0, PageSize: 20, Search: "Jones"}, view)
}

func TestInitialView_Defaults(t *testing.T) {
	fs, opts := parse(t)

	view, err := initialView(fs, opts)
	require.NoError(t, err)
	assert.Equal(t, liststate.ViewState{PageIndex: 0, PageSize: liststate.DefaultPageSize}, view)
}
