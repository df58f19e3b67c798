package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/stpnv0/MOTBooker/internal/domain"
)

type payPalRefundBody struct {
	CaptureID    string        `json:"captureId"`
	RefundAmount domain.Amount `json:"refundAmount"`
	RefundReason string        `json:"refundReason"`
}

type mollieRefundBody struct {
	BookingID string        `json:"bookingId"`
	Amount    domain.Amount `json:"amount"`
	Reason    string        `json:"reason"`
}

func (c *Client) RefundPayPal(ctx context.Context, captureID string, amount domain.Amount, reason string) (string, error) {
	res, err := c.do(ctx, call{
		endpoint: "refund_paypal",
		method:   http.MethodPost,
		path:     "/refund",
		body:     payPalRefundBody{CaptureID: captureID, RefundAmount: amount, RefundReason: reason},
	})
	if err != nil {
		return "", err
	}
	return res.message, nil
}

func (c *Client) RefundMollie(ctx context.Context, bookingID string, amount domain.Amount, reason string) (string, error) {
	res, err := c.do(ctx, call{
		endpoint: "refund_mollie",
		method:   http.MethodPost,
		path:     "/mollie/refund",
		body:     mollieRefundBody{BookingID: bookingID, Amount: amount, Reason: reason},
	})
	if err != nil {
		return "", err
	}
	return res.message, nil
}

// CheckBooking asks the backend to verify a booking before payment.
func (c *Client) CheckBooking(ctx context.Context, req *domain.BookingRequest) (string, error) {
	res, err := c.do(ctx, call{
		endpoint: "check_booking",
		method:   http.MethodPost,
		path:     "/check",
		body:     req,
	})
	if err != nil {
		return "", err
	}
	return res.message, nil
}

func (c *Client) CreateBooking(ctx context.Context, req *domain.BookingRequest) (json.RawMessage, error) {
	var data json.RawMessage
	_, err := c.do(ctx, call{
		endpoint: "create_booking",
		method:   http.MethodPost,
		path:     "/create",
		body:     req,
		out:      &data,
	})
	return data, err
}

func (c *Client) CapturePayPal(ctx context.Context, details json.RawMessage) (json.RawMessage, error) {
	var data json.RawMessage
	_, err := c.do(ctx, call{
		endpoint: "capture_paypal",
		method:   http.MethodPost,
		path:     "/capture-payment",
		body:     details,
		out:      &data,
	})
	return data, err
}

func (c *Client) CancelPayPal(ctx context.Context, bookingID string) error {
	_, err := c.do(ctx, call{
		endpoint: "cancel_paypal",
		method:   http.MethodPost,
		path:     "/" + url.PathEscape(bookingID) + "/cancel",
	})
	return err
}

func (c *Client) CancelMollie(ctx context.Context, bookingID string) error {
	_, err := c.do(ctx, call{
		endpoint: "cancel_mollie",
		method:   http.MethodPost,
		path:     "/" + url.PathEscape(bookingID) + "/mollie/cancel",
	})
	return err
}

func (c *Client) MollieStatus(ctx context.Context, bookingID string) (json.RawMessage, error) {
	var data json.RawMessage
	_, err := c.do(ctx, call{
		endpoint: "mollie_status",
		method:   http.MethodGet,
		path:     "/payment/status/" + url.PathEscape(bookingID),
		out:      &data,
		retry:    true,
	})
	return data, err
}

func (c *Client) MollieWebhook(ctx context.Context, payload json.RawMessage) error {
	_, err := c.do(ctx, call{
		endpoint: "mollie_webhook",
		method:   http.MethodPost,
		path:     "/mollie-webhook",
		body:     payload,
	})
	return err
}
