package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

// ListCustomers fetches one page of bookings. q.Page is 1-based.
func (c *Client) ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error) {
	var page domain.BookingPage
	_, err := c.do(ctx, call{
		endpoint: "list_customers",
		method:   http.MethodGet,
		path:     "/api/customers",
		query: url.Values{
			"page":   {strconv.Itoa(q.Page)},
			"limit":  {strconv.Itoa(q.Limit)},
			"search": {strings.TrimSpace(q.Search)},
		},
		out:   &page,
		retry: true,
	})
	if err != nil {
		return nil, err
	}
	if page.Bookings == nil {
		page.Bookings = []domain.Booking{}
	}
	return &page, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	_, err := c.do(ctx, call{
		endpoint: "get_customer",
		method:   http.MethodGet,
		path:     "/api/customers/" + url.PathEscape(id),
		out:      &b,
		retry:    true,
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteCustomer returns the backend's confirmation message.
func (c *Client) DeleteCustomer(ctx context.Context, id string) (string, error) {
	res, err := c.do(ctx, call{
		endpoint: "delete_customer",
		method:   http.MethodDelete,
		path:     "/api/customers/" + url.PathEscape(id),
	})
	if err != nil {
		return "", err
	}
	return res.message, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, fields json.RawMessage) (*domain.Booking, error) {
	var b domain.Booking
	_, err := c.do(ctx, call{
		endpoint: "update_customer",
		method:   http.MethodPatch,
		path:     "/api/customers/" + url.PathEscape(id),
		body:     fields,
		out:      &b,
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateCustomerByAdmin(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error) {
	var b domain.Booking
	_, err := c.do(ctx, call{
		endpoint: "admin_create_customer",
		method:   http.MethodPost,
		path:     "/api/customers/create",
		body:     req,
		out:      &b,
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
