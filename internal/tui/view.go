package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/liststate"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F4F8")).Background(lipgloss.Color("#102A43")).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9FB3C8"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#627D98"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E12D39"))
	toastStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F4F8")).Background(lipgloss.Color("#334E68")).Padding(0, 1)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#486581")).Padding(0, 1)

	slotStyles = map[domain.SlotStatus]lipgloss.Style{
		domain.SlotAvailable: lipgloss.NewStyle().Foreground(lipgloss.Color("#3EBD93")),
		domain.SlotBlocked:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E12D39")),
		domain.SlotBooked:    lipgloss.NewStyle().Foreground(lipgloss.Color("#829AB1")),
	}
)

type column struct {
	title string
	width int
	cell  func(b *domain.Booking) string
}

var columns = []column{
	{"Customer", 22, func(b *domain.Booking) string { return b.Name() }},
	{"Date", 11, func(b *domain.Booking) string { return b.DisplayDate() }},
	{"Time", 8, func(b *domain.Booking) string { return b.SelectedTimeSlot }},
	{"Total", 9, func(b *domain.Booking) string { return "£" + b.TotalPrice.String() }},
	{"Payment", 10, func(b *domain.Booking) string { return b.PaymentStatus }},
	{"Booked by", 12, func(b *domain.Booking) string { return b.BookedBy }},
	{"Method", 8, func(b *domain.Booking) string { return string(b.PaymentMethod) }},
}

func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

func (model Model) View() string {
	var body string
	switch model.mode {
	case modeLogin:
		body = model.loginView()
	case modeSlots, modeSlotDate:
		body = model.slotsView()
	case modeDetail:
		body = model.detailView()
	default:
		body = model.listView()
	}

	if model.toast != "" {
		body += "\n" + toastStyle.Render(model.toast)
	}
	return body
}

func (model Model) listView() string {
	var b strings.Builder
	snap := model.snap

	b.WriteString(titleStyle.Render("MOT Booker · Bookings"))
	b.WriteString("\n\n")

	if model.mode == modeSearch {
		b.WriteString(model.search.View())
	} else if snap.Input != "" {
		b.WriteString(dimStyle.Render("/ " + snap.Input))
	} else {
		b.WriteString(dimStyle.Render("/ to search"))
	}
	b.WriteString("\n\n")

	b.WriteString(model.headerRow(snap.Sort))
	b.WriteString("\n")

	switch {
	case snap.Err != "":
		b.WriteString(errorStyle.Render(snap.Err))
		b.WriteString("\n")
	case len(snap.Rows) == 0 && !snap.Loading:
		b.WriteString(dimStyle.Render("No bookings found"))
		b.WriteString("\n")
	}

	for i := range snap.Rows {
		row := model.bookingRow(&snap.Rows[i])
		if i == model.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pagerLine(snap))
	b.WriteString("\n")

	switch model.mode {
	case modeConfirmDelete:
		if sel, ok := model.selected(); ok {
			b.WriteString(boxStyle.Render(fmt.Sprintf("Delete booking of %s? (y/n)", sel.Name())))
		}
	case modeRefund:
		b.WriteString(model.refundView())
	default:
		b.WriteString(model.helpLine(
			model.keys.NextPage, model.keys.PrevPage, model.keys.Search, model.keys.Sort,
			model.keys.View, model.keys.Delete, model.keys.Refund, model.keys.Slots, model.keys.Quit,
		))
	}
	return b.String()
}

func (model Model) headerRow(sort liststate.Sort) string {
	cells := make([]string, 0, len(columns))
	for i, c := range columns {
		title := fmt.Sprintf("%d %s", i+1, c.title)
		if sort.Column == liststate.Columns[i] {
			title += map[bool]string{false: " ▲", true: " ▼"}[sort.Desc]
		}
		cells = append(cells, fit(title, c.width))
	}
	return headerStyle.Render(strings.Join(cells, " "))
}

func (model Model) bookingRow(b *domain.Booking) string {
	cells := make([]string, 0, len(columns))
	for _, c := range columns {
		cells = append(cells, fit(c.cell(b), c.width))
	}
	return strings.Join(cells, " ")
}

func pagerLine(snap liststate.Snapshot) string {
	status := fmt.Sprintf("Page %d of %d · %d per page", snap.View.PageIndex+1, max(snap.View.TotalPages, 1), snap.View.PageSize)
	if snap.Loading {
		status += " · loading…"
	}
	return dimStyle.Render(status)
}

func (model Model) refundView() string {
	sel, _ := model.selected()
	lines := []string{
		fmt.Sprintf("Refund %s (%s, total £%s)", sel.Name(), sel.PaymentMethod, sel.TotalPrice),
		model.refundAmount.View(),
		model.refundReason.View(),
		dimStyle.Render("Tab next field · ↵ submit · esc cancel"),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (model Model) detailView() string {
	sel, ok := model.selected()
	if !ok {
		return ""
	}
	fields := [][2]string{
		{"Customer", sel.Name()},
		{"Email", sel.Email},
		{"Contact", sel.ContactNumber},
		{"Vehicle", sel.MakeAndModel},
		{"Registration", sel.RegistrationNo},
		{"Date", sel.DisplayDate()},
		{"Time slot", sel.SelectedTimeSlot},
		{"Total", "£" + sel.TotalPrice.String()},
		{"Payment", fmt.Sprintf("%s (%s)", sel.PaymentStatus, sel.PaymentMethod)},
		{"Refund", sel.RefundStatus},
		{"Booked by", sel.BookedBy},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Booking " + sel.ID))
	b.WriteString("\n\n")
	for _, f := range fields {
		b.WriteString(headerStyle.Render(fit(f[0], 14)))
		b.WriteString(f[1])
		b.WriteString("\n")
	}
	for _, p := range sel.Photos {
		b.WriteString(dimStyle.Render("photo: " + p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(model.helpLine(model.keys.Back))
	return b.String()
}

func (model Model) slotsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MOT Booker · Time slots " + model.date))
	b.WriteString("\n\n")

	if model.mode == modeSlotDate {
		b.WriteString(model.dateInput.View())
		b.WriteString("\n\n")
	}
	if model.slotErr != "" {
		b.WriteString(errorStyle.Render(model.slotErr))
		b.WriteString("\n")
	}
	if model.busy {
		b.WriteString(dimStyle.Render("loading…"))
		b.WriteString("\n")
	}
	if len(model.day) == 0 && !model.busy {
		b.WriteString(dimStyle.Render("No slots for this date"))
		b.WriteString("\n")
	}

	for i, s := range model.day {
		line := fmt.Sprintf("%-8s %s", s.Time, slotStyles[s.Status].Render(string(s.Status)))
		if i == model.slotCursor {
			line = "› " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(model.helpLine(
		model.keys.Toggle, model.keys.PrevDay, model.keys.NextDay, model.keys.ChangeDate, model.keys.Back,
	))
	return b.String()
}

func (model Model) loginView() string {
	lines := []string{
		titleStyle.Render("Staff login"),
		"",
		model.email.View(),
		model.password.View(),
	}
	if model.loginErr != "" {
		lines = append(lines, "", errorStyle.Render(model.loginErr))
	}
	lines = append(lines, "", dimStyle.Render("Tab next field · ↵ log in · C-c quit"))
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (model Model) helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return dimStyle.Render(strings.Join(parts, " · "))
}
