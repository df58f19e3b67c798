package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/export"
	"github.com/stpnv0/MOTBooker/internal/handler/dto"
	"github.com/stpnv0/MOTBooker/internal/liststate"
	"github.com/wb-go/wbf/ginext"
)

const (
	bookingsPath    = "/admin/bookings"
	defaultAuditLen = 100
)

type columnLink struct {
	Title  string
	URL    string
	Marker string
}

type bookingsView struct {
	Rows      []dto.BookingResponse
	View      liststate.ViewState
	Sort      liststate.Sort
	Page      int
	Columns   []columnLink
	PageSizes []pageSizeLink
	PrevURL   string
	NextURL   string
	FirstURL  string
	LastURL   string
	Error     string
}

type pageSizeLink struct {
	Size     int
	URL      string
	Selected bool
}

var columnTitles = map[liststate.Column]string{
	liststate.ColumnName:          "Customer",
	liststate.ColumnDate:          "Date",
	liststate.ColumnTimeSlot:      "Time slot",
	liststate.ColumnTotal:         "Total",
	liststate.ColumnPaymentStatus: "Payment status",
	liststate.ColumnBookedBy:      "Booked by",
	liststate.ColumnPayment:       "Payment method",
}

// viewURL renders the list URL for view, keeping the sort parameters.
func viewURL(view liststate.ViewState, sort liststate.Sort) string {
	q := view.Query()
	if sort.Active() {
		q.Set(liststate.ParamSort, string(sort.Column))
		if sort.Desc {
			q.Set(liststate.ParamOrder, "desc")
		}
	}
	return bookingsPath + "?" + q.Encode()
}

func newBookingsView(rows []domain.Booking, view liststate.ViewState, sort liststate.Sort) bookingsView {
	page := dto.ToBookingPageResponse(rows, view, sort, bookingsPath)

	at := func(idx int) string {
		v := view
		v.PageIndex = idx
		return viewURL(v, sort)
	}

	out := bookingsView{
		Rows:     page.Bookings,
		View:     view,
		Sort:     sort,
		Page:     view.PageIndex + 1,
		FirstURL: at(0),
		LastURL:  at(max(view.TotalPages-1, 0)),
	}
	if view.CanPrev() {
		out.PrevURL = at(view.PageIndex - 1)
	}
	if view.CanNext() {
		out.NextURL = at(view.PageIndex + 1)
	}

	for _, c := range liststate.Columns {
		next := liststate.Reduce(liststate.Model{Sort: sort}, liststate.SortBy{Column: c}).Sort
		link := columnLink{Title: columnTitles[c], URL: viewURL(view, next)}
		if sort.Column == c {
			link.Marker = "▲"
			if sort.Desc {
				link.Marker = "▼"
			}
		}
		out.Columns = append(out.Columns, link)
	}

	for _, size := range liststate.PageSizes {
		v := liststate.Reduce(liststate.Model{View: view}, liststate.SetPageSize{Size: size}).View
		out.PageSizes = append(out.PageSizes, pageSizeLink{
			Size:     size,
			URL:      viewURL(v, sort),
			Selected: size == view.PageSize,
		})
	}

	return out
}

// BookingsPage renders the booking table for the view in the URL. Read
// failures are shown on the page; only an expired session leaves it.
func (h *Handler) BookingsPage(c *ginext.Context) {
	view := liststate.FromQuery(c.Request.URL.Query())
	sort := liststate.SortFromQuery(c.Request.URL.Query())

	page, err := h.bookingService.ListCustomers(c.Request.Context(), view.WireQuery())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.handleError(c, err)
			return
		}
		c.Set("error", err.Error())
		data := newBookingsView(nil, view, sort)
		data.Error = backend.Message(err)
		c.HTML(http.StatusOK, "bookings.html", data)
		return
	}

	view.TotalPages = page.TotalPages
	c.HTML(http.StatusOK, "bookings.html", newBookingsView(sort.Apply(page.Bookings), view, sort))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	view := liststate.FromQuery(c.Request.URL.Query())
	sort := liststate.SortFromQuery(c.Request.URL.Query())

	page, err := h.bookingService.ListCustomers(c.Request.Context(), view.WireQuery())
	if err != nil {
		h.handleError(c, err)
		return
	}

	view.TotalPages = page.TotalPages
	c.JSON(http.StatusOK, dto.ToBookingPageResponse(sort.Apply(page.Bookings), view, sort, bookingsPath))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	b, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	msg, err := h.bookingService.DeleteCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

func (h *Handler) RefundBooking(c *ginext.Context) {
	var req dto.RefundRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Please fill in all required fields"})
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	outcome, err := h.bookingService.RefundByID(c.Request.Context(), c.Param("id"), amount, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "request body is required"})
		return
	}

	b, err := h.bookingService.Update(c.Request.Context(), c.Param("id"), raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(b))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.bookingService.CreateByAdmin(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(b))
}

// ExportBookings downloads the page the URL describes as xlsx.
func (h *Handler) ExportBookings(c *ginext.Context) {
	view := liststate.FromQuery(c.Request.URL.Query())
	sort := liststate.SortFromQuery(c.Request.URL.Query())

	page, err := h.bookingService.ListCustomers(c.Request.Context(), view.WireQuery())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(view.PageIndex, view.Search)+`"`)
	c.Status(http.StatusOK)
	if err = export.WriteBookings(c.Writer, sort.Apply(page.Bookings)); err != nil {
		c.Set("error", err.Error())
		_ = c.Error(err)
	}
}

func (h *Handler) AuditLog(c *ginext.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLen)))
	if err != nil || limit <= 0 {
		limit = defaultAuditLen
	}

	entries, err := h.bookingService.History(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToAuditEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// Slots

type slotRow struct {
	Time       string
	Status     string
	Mutable    bool
	ActionText string
}

type slotsView struct {
	Date  string
	Slots []slotRow
	Error string
}

func toSlotRows(slots []domain.Slot) []slotRow {
	rows := make([]slotRow, 0, len(slots))
	for _, s := range slots {
		r := slotRow{Time: s.Time, Status: string(s.Status), Mutable: s.Mutable()}
		switch s.Status {
		case domain.SlotAvailable:
			r.ActionText = "Block"
		case domain.SlotBlocked:
			r.ActionText = "Unblock"
		}
		rows = append(rows, r)
	}
	return rows
}

func (h *Handler) SlotsPage(c *ginext.Context) {
	date := c.DefaultQuery("date", domain.FormatDate(time.Now()))

	day, slots, err := h.slotService.Day(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.handleError(c, err)
			return
		}
		c.Set("error", err.Error())
		c.HTML(http.StatusOK, "slots.html", slotsView{Date: date, Error: backend.Message(err)})
		return
	}

	c.HTML(http.StatusOK, "slots.html", slotsView{Date: day, Slots: toSlotRows(slots)})
}

func (h *Handler) GetSlots(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date is required"})
		return
	}

	day, slots, err := h.slotService.Day(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotsResponse{Date: day, Slots: slots})
}

// ToggleSlot answers with the refetched day. When the mutation failed but
// the refetch worked, the day comes back along with the error.
func (h *Handler) ToggleSlot(c *ginext.Context) {
	var req dto.ToggleSlotRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot := domain.Slot{Time: req.Time, Status: domain.SlotStatus(req.Status)}
	slots, err := h.slotService.Toggle(c.Request.Context(), req.Date, slot)

	if wantsHTML(c) && !errors.Is(err, domain.ErrUnauthorized) {
		if err != nil {
			c.Set("error", err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/admin/slots?"+url.Values{"date": {req.Date}}.Encode())
		return
	}

	if err != nil {
		if slots != nil && !errors.Is(err, domain.ErrUnauthorized) {
			c.Set("error", err.Error())
			c.JSON(toggleFailureStatus(err), dto.SlotsResponse{Date: req.Date, Slots: slots, Error: backend.Message(err)})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotsResponse{Date: req.Date, Slots: slots})
}

func toggleFailureStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrSlotBooked), errors.Is(err, domain.ErrSlotChanged):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
