package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, time.Second, WithRetry(retry.Strategy{
		Attempts: 3,
		Delay:    time.Millisecond,
		Backoff:  1,
	}))
	require.NoError(t, err)
	return c
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, success bool, message string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	assert.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"success":    success,
		"message":    message,
		"data":       json.RawMessage(raw),
	})
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api", time.Second)
	require.Error(t, err)
}

func TestClient_ListCustomers_QueryAndDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "Smith", r.URL.Query().Get("search"))

		writeEnvelope(t, w, http.StatusOK, true, "ok", map[string]any{
			"customers": []map[string]any{
				{"_id": "b1", "customerName": "John Smith", "totalPrice": "43.20", "paymentMethod": "PayPal"},
				{"_id": "b2", "customerName": "Jane Smith", "totalPrice": 50},
			},
			"totalPages": 4,
		})
	})

	page, err := c.ListCustomers(context.Background(), domain.PageQuery{Page: 3, Limit: 20, Search: "  Smith "})

	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Bookings, 2)
	assert.Equal(t, "b1", page.Bookings[0].ID)
	assert.Equal(t, domain.Amount(43.20), page.Bookings[0].TotalPrice)
	assert.Equal(t, domain.Amount(50), page.Bookings[1].TotalPrice)
	assert.Equal(t, domain.PaymentMethodPayPal, page.Bookings[0].PaymentMethod)
}

func TestClient_Unauthorized_ByStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, false, "Unauthorized request", nil)
	})

	_, err := c.ListCustomers(context.Background(), domain.PageQuery{Page: 1, Limit: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Unauthorized request", Message(err))
}

func TestClient_Unauthorized_ByMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusForbidden, false, "Unauthorized request", nil)
	})

	_, err := c.DaySlots(context.Background(), "2024-05-01")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_SuccessFalseIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, false, "slot already taken", nil)
	})

	_, err := c.CheckBooking(context.Background(), &domain.BookingRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
	assert.Equal(t, "slot already taken", Message(err))
}

func TestClient_NestedErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, false, "", map[string]string{"message": "date is in the past"})
	})

	_, err := c.CheckBooking(context.Background(), &domain.BookingRequest{})

	assert.Equal(t, "date is in the past", Message(err))
}

func TestClient_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, false, "customer not found", nil)
	})

	_, err := c.GetCustomer(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_RetriesReadsOnServerError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeEnvelope(t, w, http.StatusBadGateway, false, "upstream", nil)
			return
		}
		writeEnvelope(t, w, http.StatusOK, true, "", []domain.Slot{{Time: "09:00", Status: domain.SlotAvailable}})
	})

	slots, err := c.DaySlots(context.Background(), "2024-05-01")

	require.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(t, w, http.StatusUnauthorized, false, "Unauthorized request", nil)
	})

	_, err := c.DaySlots(context.Background(), "2024-05-01")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_DoesNotRetryMutations(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(t, w, http.StatusInternalServerError, false, "boom", nil)
	})

	err := c.BlockSlots(context.Background(), "2024-05-01", []string{"09:00"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BlockSlotsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/customers/blocktimeslots", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"date":"2024-05-01","slots":["09:00"]}`, string(body))
		writeEnvelope(t, w, http.StatusOK, true, "blocked", nil)
	})

	require.NoError(t, c.BlockSlots(context.Background(), "2024-05-01", []string{"09:00"}))
}

func TestClient_RefundBodies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		switch r.URL.Path {
		case "/refund":
			assert.JSONEq(t, `{"captureId":"CAP-1","refundAmount":43.20,"refundReason":"no show"}`, string(body))
		case "/mollie/refund":
			assert.JSONEq(t, `{"bookingId":"b1","amount":10.00,"reason":"partial"}`, string(body))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeEnvelope(t, w, http.StatusOK, true, "refunded", nil)
	})

	msg, err := c.RefundPayPal(context.Background(), "CAP-1", 43.20, "no show")
	require.NoError(t, err)
	assert.Equal(t, "refunded", msg)

	_, err = c.RefundMollie(context.Background(), "b1", 10, "partial")
	require.NoError(t, err)
}

func TestClient_ForwardsContextCookies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("accessToken")
		if assert.NoError(t, err) {
			assert.Equal(t, "tok", cookie.Value)
		}
		writeEnvelope(t, w, http.StatusOK, true, "", nil)
	})

	ctx := WithCookies(context.Background(), []*http.Cookie{{Name: "accessToken", Value: "tok"}})
	require.NoError(t, c.CheckAuth(ctx))
}

func TestClient_LoginReturnsCookies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "tok", Path: "/"})
		writeEnvelope(t, w, http.StatusOK, true, "logged in", nil)
	})

	cookies, err := c.Login(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
}

func TestClient_DisabledDatesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers/slots/disbale-date", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "5", r.URL.Query().Get("month"))
		writeEnvelope(t, w, http.StatusOK, true, "", []domain.DisabledDate{{Date: "2024-05-04"}})
	})

	dates, err := c.DisabledDates(context.Background(), 2024, 5)

	require.NoError(t, err)
	assert.Equal(t, []domain.DisabledDate{{Date: "2024-05-04"}}, dates)
}
