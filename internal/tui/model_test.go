package tui

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/liststate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type refundCall struct {
	id     string
	amount domain.Amount
	reason string
}

type fakeList struct {
	snap       liststate.Snapshot
	updates    chan liststate.Snapshot
	started    bool
	refreshes  int
	typed      []string
	dispatched []liststate.Action
	deleted    []string
	refunds    []refundCall
}

func newFakeList(rows ...domain.Booking) *fakeList {
	return &fakeList{
		snap: liststate.Snapshot{
			View: liststate.ViewState{PageSize: 10, TotalPages: 3},
			Rows: rows,
		},
		updates: make(chan liststate.Snapshot, 1),
	}
}

func (f *fakeList) Start() { f.started = true }
func (f *fakeList) Type(text string) { f.typed = append(f.typed, text) }
func (f *fakeList) Dispatch(a liststate.Action) { f.dispatched = append(f.dispatched, a) }
func (f *fakeList) Refresh() { f.refreshes++ }
func (f *fakeList) Snapshot() liststate.Snapshot { return f.snap }
func (f *fakeList) Updates() <-chan liststate.Snapshot { return f.updates }

func (f *fakeList) Delete(_ context.Context, id string) (string, error) {
	f.deleted = append(f.deleted, id)
	return "Customer deleted successfully", nil
}

func (f *fakeList) Refund(_ context.Context, id string, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	f.refunds = append(f.refunds, refundCall{id: id, amount: amount, reason: reason})
	return &domain.RefundOutcome{Method: domain.PaymentMethodPayPal}, nil
}

type fakeSlots struct {
	day     []domain.Slot
	toggled []domain.Slot
}

func (f *fakeSlots) Day(_ context.Context, date string) (string, []domain.Slot, error) {
	return date, f.day, nil
}

func (f *fakeSlots) Toggle(_ context.Context, _ string, slot domain.Slot) ([]domain.Slot, error) {
	f.toggled = append(f.toggled, slot)
	return f.day, nil
}

type fakeAuth struct {
	email, password string
	err             error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) ([]*http.Cookie, error) {
	f.email, f.password = email, password
	return nil, f.err
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func testRows() []domain.Booking {
	return []domain.Booking{
		{ID: "b1", CustomerName: "Ann Smith", TotalPrice: 43.2, PaymentMethod: domain.PaymentMethodPayPal},
		{ID: "b2", CustomerName: "Bob Jones", TotalPrice: 54, PaymentMethod: domain.PaymentMethodMollie, RefundStatus: domain.RefundStatusCompleted},
	}
}

func newTestModel(list *fakeList) (Model, *fakeSlots, *fakeAuth) {
	slots := &fakeSlots{}
	auth := &fakeAuth{}
	m := NewModel(context.Background(), list, slots, auth)
	m.now = func() time.Time { return time.Date(2024, 5, 3, 9, 0, 0, 0, time.Local) }
	return m, slots, auth
}

func TestModel_InitStartsList(t *testing.T) {
	list := newFakeList()
	m, _, _ := newTestModel(list)

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, list.started)

	list.updates <- liststate.Snapshot{Rows: testRows()}
	msg := cmd()
	m, _ = send(t, m, msg)
	assert.Len(t, m.snap.Rows, 2)
}

func TestModel_Pagination(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("n"), runes("p"), runes("G"), runes("g"), runes("+"))
	assert.Equal(t, []liststate.Action{
		liststate.NextPage{},
		liststate.PrevPage{},
		liststate.LastPage{},
		liststate.FirstPage{},
		liststate.SetPageSize{Size: 20},
	}, list.dispatched)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_SortByDigit(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	send(t, m, runes("4"))
	assert.Equal(t, []liststate.Action{liststate.SortBy{Column: liststate.ColumnTotal}}, list.dispatched)
}

func TestModel_SearchForwardsEveryKeystroke(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("/"), runes("S"), runes("m"))
	assert.Equal(t, modeSearch, m.mode)
	assert.Equal(t, []string{"S", "Sm"}, list.typed)

	m, _ = send(t, m, esc)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []string{"S", "Sm", ""}, list.typed)
	assert.Empty(t, list.dispatched, "search typing never dispatches directly")
}

func TestModel_DeleteAfterConfirm(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("j"), runes("d"))
	assert.Equal(t, modeConfirmDelete, m.mode)

	m, cmd := send(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, []string{"b2"}, list.deleted)
	assert.Equal(t, "Customer deleted successfully", m.toast)
}

func TestModel_DeleteCancelled(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, cmd := send(t, m, runes("d"), runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, list.deleted)
}

func TestModel_Refund(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("r"))
	require.Equal(t, modeRefund, m.mode)
	assert.Equal(t, "43.20", m.refundAmount.Value())

	m, cmd := send(t, m, tab, runes("Customer cancelled"), enter)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	require.Len(t, list.refunds, 1)
	assert.Equal(t, refundCall{id: "b1", amount: 43.2, reason: "Customer cancelled"}, list.refunds[0])
	assert.Contains(t, m.toast, "PayPal")
}

func TestModel_RefundNeedsReason(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("r"), enter)
	assert.Equal(t, modeRefund, m.mode)
	assert.Equal(t, "Please fill in all required fields", m.toast)
	assert.Empty(t, list.refunds)
}

func TestModel_RefundAlreadyRefunded(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, _ := newTestModel(list)

	m, _ = send(t, m, runes("j"), runes("r"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Booking is already refunded", m.toast)
}

func TestModel_SlotManager(t *testing.T) {
	list := newFakeList(testRows()...)
	m, slots, _ := newTestModel(list)
	slots.day = []domain.Slot{
		{Time: "09:00", Status: domain.SlotBooked},
		{Time: "10:00", Status: domain.SlotAvailable},
	}

	m, cmd := send(t, m, runes("t"))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, modeSlots, m.mode)
	assert.Equal(t, "2024-05-03", m.date)
	require.Len(t, m.day, 2)

	m, _ = send(t, m, enter)
	assert.Equal(t, "Booked slots cannot be changed", m.toast)
	assert.Empty(t, slots.toggled)

	m, _ = send(t, m, runes("j"))
	m, cmd = send(t, m, enter)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, []domain.Slot{{Time: "10:00", Status: domain.SlotAvailable}}, slots.toggled)
	assert.Contains(t, m.View(), "10:00")
}

func TestModel_UnauthorizedShowsLogin(t *testing.T) {
	list := newFakeList(testRows()...)
	m, _, auth := newTestModel(list)

	m, _ = send(t, m, snapshotMsg{snap: liststate.Snapshot{Unauthorized: true}, ok: true})
	require.Equal(t, modeLogin, m.mode)
	assert.True(t, strings.Contains(m.View(), "Staff login"))

	m, cmd := send(t, m, runes("jo@garage.test"), tab, runes("secret"), enter)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, "jo@garage.test", auth.email)
	assert.Equal(t, "secret", auth.password)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 1, list.refreshes)
}

// gatedSource rejects the first list call as unauthorized and holds every
// later one until release is closed.
type gatedSource struct {
	calls   atomic.Int32
	release chan struct{}
	rows    []domain.Booking
}

func (g *gatedSource) ListCustomers(ctx context.Context, _ domain.PageQuery) (*domain.BookingPage, error) {
	if g.calls.Add(1) == 1 {
		return nil, domain.ErrUnauthorized
	}
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &domain.BookingPage{Bookings: g.rows, TotalPages: 1}, nil
}

func (g *gatedSource) DeleteCustomer(context.Context, string) (string, error) { return "", nil }

func TestModel_LoginReturnsToListWithSynchronizer(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	src := &gatedSource{release: make(chan struct{}), rows: testRows()}
	list := liststate.New(context.Background(), src, nil, liststate.ViewState{PageSize: 10}, log)
	t.Cleanup(list.Close)

	slots := &fakeSlots{}
	auth := &fakeAuth{}
	m := NewModel(context.Background(), list, slots, auth)

	m.Init()
	require.Eventually(t, func() bool {
		snap := list.Snapshot()
		return !snap.Loading && snap.Unauthorized
	}, time.Second, 5*time.Millisecond)

	m, _ = send(t, m, snapshotMsg{snap: list.Snapshot(), ok: true})
	require.Equal(t, modeLogin, m.mode)

	m, cmd := send(t, m, runes("jo@garage.test"), tab, runes("secret"), enter)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	require.Equal(t, modeList, m.mode)

	// The refetch is still in flight here.
	m, _ = send(t, m, snapshotMsg{snap: list.Snapshot(), ok: true})
	assert.Equal(t, modeList, m.mode)
	assert.True(t, m.snap.Loading)

	close(src.release)
	require.Eventually(t, func() bool { return !list.Snapshot().Loading }, time.Second, 5*time.Millisecond)

	m, _ = send(t, m, snapshotMsg{snap: list.Snapshot(), ok: true})
	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.snap.Rows, 2)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestModel_LoginFailureStaysOnLogin(t *testing.T) {
	list := newFakeList()
	m, _, auth := newTestModel(list)
	auth.err = domain.ErrUnauthorized

	m, _ = send(t, m, snapshotMsg{snap: liststate.Snapshot{Unauthorized: true}, ok: true})
	m, cmd := send(t, m, runes("jo@garage.test"), enter, runes("wrong"), enter)
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, modeLogin, m.mode)
	assert.Equal(t, "Invalid email or password", m.loginErr)
	assert.Zero(t, list.refreshes)
}

func TestStepPageSize(t *testing.T) {
	assert.Equal(t, 20, stepPageSize(10, 1))
	assert.Equal(t, 10, stepPageSize(10, -1))
	assert.Equal(t, 50, stepPageSize(50, 1))
	assert.Equal(t, liststate.DefaultPageSize, stepPageSize(13, 1))
}
