package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/bookingform"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const loginPath = "/login"

type BookingSvc interface {
	ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	DeleteCustomer(ctx context.Context, id string) (string, error)
	RefundByID(ctx context.Context, id string, amount domain.Amount, reason string) (*domain.RefundOutcome, error)
	Update(ctx context.Context, id string, fields json.RawMessage) (*domain.Booking, error)
	CreateByAdmin(ctx context.Context, req *domain.BookingRequest) (*domain.Booking, error)
	History(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

type SlotSvc interface {
	Day(ctx context.Context, date string) (string, []domain.Slot, error)
	Toggle(ctx context.Context, date string, slot domain.Slot) ([]domain.Slot, error)
}

type FormSvc interface {
	SelectDate(ctx context.Context, sessionID, date string) (*domain.DateSelection, error)
	ChangeMonth(ctx context.Context, sessionID string, year, month int) ([]string, error)
	Submit(ctx context.Context, req *domain.BookingRequest) (*domain.SubmitResult, error)
	Create(ctx context.Context, req *domain.BookingRequest) (json.RawMessage, error)
	CapturePayPal(ctx context.Context, details json.RawMessage) (json.RawMessage, error)
	CancelPayment(ctx context.Context, method domain.PaymentMethod, bookingID string) error
	MollieStatus(ctx context.Context, bookingID string) (json.RawMessage, error)
	MollieWebhook(ctx context.Context, payload json.RawMessage) error
}

type AuthSvc interface {
	Login(ctx context.Context, email, password string) ([]*http.Cookie, error)
	Logout(ctx context.Context) ([]*http.Cookie, error)
	Check(ctx context.Context) error
}

// Sessions configures the cookie that identifies a public form session.
type Sessions struct {
	Cookie string
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	bookingService BookingSvc
	slotService    SlotSvc
	formService    FormSvc
	authService    AuthSvc
	sessions       Sessions
}

func NewHandler(
	bookingService BookingSvc,
	slotService SlotSvc,
	formService FormSvc,
	authService AuthSvc,
	sessions Sessions,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		slotService:    slotService,
		formService:    formService,
		authService:    authService,
		sessions:       sessions,
	}
}

// wantsHTML reports whether the caller is a browser page rather than a
// script calling the JSON API.
func wantsHTML(c *ginext.Context) bool {
	if strings.Contains(c.Request.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fields bookingform.FieldErrors
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		if wantsHTML(c) {
			c.Redirect(http.StatusFound, loginPath)
			return
		}
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:    "Unauthorized request",
			Redirect: loginPath,
		})

	case errors.As(err, &fields):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Please complete all required fields",
			Fields: fields,
		})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: backend.Message(err)})

	case errors.Is(err, domain.ErrSlotBooked),
		errors.Is(err, domain.ErrSlotChanged),
		errors.Is(err, domain.ErrAlreadyRefunded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnsupportedPaymentMethod),
		errors.Is(err, domain.ErrVerificationFailed):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: backend.Message(err)})

	case errors.Is(err, domain.ErrBackend):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: backend.Message(err)})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
