package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type formView struct {
	Today           string
	ReferralSources []string
	TotalPrice      string
	PaymentMethods  []domain.PaymentMethod
}

func (h *Handler) FormPage(c *ginext.Context) {
	h.sessionID(c)
	c.HTML(http.StatusOK, "index.html", formView{
		Today:           domain.FormatDate(time.Now()),
		ReferralSources: domain.ReferralSources,
		TotalPrice:      domain.DefaultTotalPrice,
		PaymentMethods:  []domain.PaymentMethod{domain.PaymentMethodPayPal, domain.PaymentMethodMollie},
	})
}

// sessionID returns the form session of the caller, starting a new one
// when the cookie is missing.
func (h *Handler) sessionID(c *ginext.Context) string {
	if id, err := c.Cookie(h.sessions.Cookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessions.Cookie, id, int(h.sessions.TTL.Seconds()), "/", "", h.sessions.Secure, true)
	return id
}

func (h *Handler) FormSlots(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Date is required"})
		return
	}

	sel, err := h.formService.SelectDate(c.Request.Context(), h.sessionID(c), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, sel)
}

func (h *Handler) DisabledDates(c *ginext.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "year and month are required"})
		return
	}
	if q.Date != "" {
		day, err := domain.ParseDate(q.Date)
		if err != nil {
			h.handleError(c, err)
			return
		}
		q.Year, q.Month = day.Year(), int(day.Month())
	}

	dates, err := h.formService.ChangeMonth(c.Request.Context(), h.sessionID(c), q.Year, q.Month)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"excluded_dates": dates})
}

func (h *Handler) SubmitForm(c *ginext.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.formService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateFormBooking(c *ginext.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	data, err := h.formService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusCreated, "application/json", data)
}

func (h *Handler) CapturePayPal(c *ginext.Context) {
	raw, err := c.GetRawData()
	if err != nil || !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment details"})
		return
	}

	data, err := h.formService.CapturePayPal(c.Request.Context(), raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) CancelPayment(c *ginext.Context) {
	var req dto.CancelPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "paymentMethod is required"})
		return
	}

	if err := h.formService.CancelPayment(c.Request.Context(), domain.PaymentMethod(req.PaymentMethod), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Payment cancelled"})
}

func (h *Handler) MollieStatus(c *ginext.Context) {
	data, err := h.formService.MollieStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

// MollieWebhook relays provider callbacks. Mollie posts a form body
// (id=tr_...), which is forwarded as JSON.
func (h *Handler) MollieWebhook(c *ginext.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid webhook body"})
		return
	}

	if strings.HasPrefix(c.ContentType(), "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid webhook body"})
			return
		}
		fields := make(map[string]string, len(values))
		for k := range values {
			fields[k] = values.Get(k)
		}
		raw, _ = json.Marshal(fields)
	}

	if !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid webhook body"})
		return
	}

	if err := h.formService.MollieWebhook(c.Request.Context(), raw); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
