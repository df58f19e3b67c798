package export

import (
	"bytes"
	"testing"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteBookings(t *testing.T) {
	bookings := []domain.Booking{
		{
			FirstName: "John", LastName: "Smith", Email: "john@example.com",
			SelectedDate: "2024-05-01", SelectedTimeSlot: "09:00",
			TotalPrice: 54.85, PaymentMethod: domain.PaymentMethodPayPal,
			PaymentStatus: "paid", BookedBy: "customer",
		},
		{CustomerName: "Jane Doe", SelectedDate: "2024-05-02", RefundStatus: "completed"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "John Smith", rows[1][0])
	assert.Equal(t, "01/05/2024", rows[1][5])
	assert.Equal(t, "54.85", rows[1][7])
	assert.Equal(t, "PayPal", rows[1][9])
	assert.Equal(t, "Jane Doe", rows[2][0])
	assert.Equal(t, "completed", rows[2][10])
}

func TestWriteBookings_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "bookings-page-3.xlsx", FileName(2, ""))
	assert.Equal(t, "bookings-page-1-filtered.xlsx", FileName(0, "Smith"))
}
