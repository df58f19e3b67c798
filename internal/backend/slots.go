package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type slotsBody struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// DaySlots returns every slot of date with its admin-facing status.
func (c *Client) DaySlots(ctx context.Context, date string) ([]domain.Slot, error) {
	var slots []domain.Slot
	_, err := c.do(ctx, call{
		endpoint: "day_slots",
		method:   http.MethodGet,
		path:     "/api/customers/available/slot",
		query:    url.Values{"date": {date}},
		out:      &slots,
		retry:    true,
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) BlockSlots(ctx context.Context, date string, slots []string) error {
	_, err := c.do(ctx, call{
		endpoint: "block_slots",
		method:   http.MethodPatch,
		path:     "/api/customers/blocktimeslots",
		body:     slotsBody{Date: date, Slots: slots},
	})
	return err
}

func (c *Client) UnblockSlots(ctx context.Context, date string, slots []string) error {
	_, err := c.do(ctx, call{
		endpoint: "unblock_slots",
		method:   http.MethodPatch,
		path:     "/api/customers/unblocktimeslots",
		body:     slotsBody{Date: date, Slots: slots},
	})
	return err
}

// FormSlots returns the slots the public form may show for date.
func (c *Client) FormSlots(ctx context.Context, date string) ([]domain.Slot, error) {
	var slots []domain.Slot
	_, err := c.do(ctx, call{
		endpoint: "form_slots",
		method:   http.MethodGet,
		path:     "/api/customers/slots/times-slots",
		query:    url.Values{"date": {date}},
		out:      &slots,
		retry:    true,
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// DisabledDates returns fully booked or closed days of a month (1-12).
// The path spelling is the backend's.
func (c *Client) DisabledDates(ctx context.Context, year, month int) ([]domain.DisabledDate, error) {
	var dates []domain.DisabledDate
	_, err := c.do(ctx, call{
		endpoint: "disabled_dates",
		method:   http.MethodGet,
		path:     "/api/customers/slots/disbale-date",
		query: url.Values{
			"year":  {strconv.Itoa(year)},
			"month": {strconv.Itoa(month)},
		},
		out:   &dates,
		retry: true,
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}
