package export

import (
	"fmt"
	"io"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Bookings"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []string{
	"Customer", "Email", "Contact number", "Vehicle", "Registration",
	"Date", "Time slot", "Total (£)", "Payment status", "Payment method",
	"Refund status", "Booked by",
}

var widths = []float64{24, 30, 16, 22, 14, 12, 11, 10, 16, 16, 14, 14}

func row(b *domain.Booking) []any {
	return []any{
		b.Name(),
		b.Email,
		b.ContactNumber,
		b.MakeAndModel,
		b.RegistrationNo,
		b.DisplayDate(),
		b.SelectedTimeSlot,
		float64(b.TotalPrice),
		b.PaymentStatus,
		string(b.PaymentMethod),
		b.RefundStatus,
		b.BookedBy,
	}
}

// WriteBookings writes bookings as an xlsx workbook with one header row
// and one row per booking, in the order given.
func WriteBookings(w io.Writer, bookings []domain.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	for i, width := range widths {
		if err = sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("create money style: %w", err)
	}

	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err = sw.SetRow("A1", head); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range bookings {
		values := row(&bookings[i])
		values[7] = excelize.Cell{StyleID: moneyStyle, Value: values[7]}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err = sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// FileName names an export of page (0-based) of the booking list.
func FileName(pageIndex int, search string) string {
	if search != "" {
		return fmt.Sprintf("bookings-page-%d-filtered.xlsx", pageIndex+1)
	}
	return fmt.Sprintf("bookings-page-%d.xlsx", pageIndex+1)
}
