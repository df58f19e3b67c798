package tui

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/liststate"
)

// List is the booking list the console renders.
type List interface {
	Start()
	Type(text string)
	Dispatch(a liststate.Action)
	Refresh()
	Delete(ctx context.Context, id string) (string, error)
	Refund(ctx context.Context, id string, amount domain.Amount, reason string) (*domain.RefundOutcome, error)
	Snapshot() liststate.Snapshot
	Updates() <-chan liststate.Snapshot
}

type SlotManager interface {
	Day(ctx context.Context, date string) (string, []domain.Slot, error)
	Toggle(ctx context.Context, date string, slot domain.Slot) ([]domain.Slot, error)
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) ([]*http.Cookie, error)
}

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
	modeConfirmDelete
	modeRefund
	modeSlots
	modeSlotDate
	modeLogin
)

const toastTTL = 4 * time.Second

type snapshotMsg struct {
	snap liststate.Snapshot
	ok   bool
}

type deleteDoneMsg struct {
	message string
	err     error
}

type refundDoneMsg struct {
	outcome *domain.RefundOutcome
	err     error
}

type slotsMsg struct {
	date  string
	slots []domain.Slot
	err   error
}

type loginDoneMsg struct{ err error }

type toastExpiredMsg struct{ id int }

// Model is the bubbletea model of the admin console.
type Model struct {
	ctx   context.Context
	list  List
	slots SlotManager
	auth  Authenticator
	keys  KeyMap

	mode   mode
	snap   liststate.Snapshot
	cursor int

	search textinput.Model

	refundAmount textinput.Model
	refundReason textinput.Model
	refundFocus  int

	date       string
	day        []domain.Slot
	slotCursor int
	slotErr    string
	dateInput  textinput.Model

	email      textinput.Model
	password   textinput.Model
	loginFocus int
	loginErr   string

	toast   string
	toastID int
	busy    bool

	width  int
	height int
	now    func() time.Time
}

func NewModel(ctx context.Context, list List, slots SlotManager, auth Authenticator) Model {
	search := textinput.New()
	search.Placeholder = "Search by name, email or registration"
	search.Prompt = "/ "

	amount := textinput.New()
	amount.Placeholder = "Amount"
	amount.Prompt = "£ "
	reason := textinput.New()
	reason.Placeholder = "Reason for refund"
	reason.Prompt = "Reason: "

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Prompt = "Date: "

	email := textinput.New()
	email.Placeholder = "staff@example.com"
	email.Prompt = "Email:    "
	password := textinput.New()
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword

	return Model{
		ctx:          ctx,
		list:         list,
		slots:        slots,
		auth:         auth,
		keys:         DefaultKeyMap,
		snap:         list.Snapshot(),
		search:       search,
		refundAmount: amount,
		refundReason: reason,
		dateInput:    dateInput,
		email:        email,
		password:     password,
		now:          time.Now,
	}
}

func (model Model) Init() tea.Cmd {
	model.list.Start()
	return listenForSnapshot(model.list.Updates())
}

// listenForSnapshot blocks until the list publishes a new snapshot.
func listenForSnapshot(updates <-chan liststate.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		return snapshotMsg{snap: snap, ok: ok}
	}
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case snapshotMsg:
		if !message.ok {
			return model, nil
		}
		return model.applySnapshot(message.snap), listenForSnapshot(model.list.Updates())

	case deleteDoneMsg:
		model.busy = false
		if message.err != nil {
			return model.notify("Delete failed: " + backend.Message(message.err))
		}
		return model.notify(message.message)

	case refundDoneMsg:
		model.busy = false
		if message.err != nil {
			return model.notify("Refund failed: " + backend.Message(message.err))
		}
		return model.notify("Refund processed via " + string(message.outcome.Method))

	case slotsMsg:
		return model.applySlots(message), nil

	case loginDoneMsg:
		model.busy = false
		if message.err != nil {
			model.loginErr = loginError(message.err)
			return model, nil
		}
		model.loginErr = ""
		model.password.SetValue("")
		model.mode = modeList
		model.list.Refresh()
		return model.notify("Logged in")

	case toastExpiredMsg:
		if message.id == model.toastID {
			model.toast = ""
		}
		return model, nil

	case tea.KeyMsg:
		if message.String() == "ctrl+c" {
			return model, tea.Quit
		}
		return model.handleKey(message)
	}

	return model, nil
}

func (model Model) applySnapshot(snap liststate.Snapshot) Model {
	model.snap = snap
	if model.cursor >= len(snap.Rows) {
		model.cursor = max(len(snap.Rows)-1, 0)
	}
	if snap.Unauthorized && !snap.Loading && model.mode != modeLogin {
		model.mode = modeLogin
		model.loginFocus = 0
		model.email.Focus()
		model.password.Blur()
	}
	return model
}

func (model Model) applySlots(message slotsMsg) Model {
	model.busy = false
	if errors.Is(message.err, domain.ErrUnauthorized) {
		model.mode = modeLogin
		model.email.Focus()
		return model
	}
	if message.slots != nil {
		model.date = message.date
		model.day = message.slots
	}
	model.slotErr = ""
	if message.err != nil {
		model.slotErr = backend.Message(message.err)
	}
	if model.slotCursor >= len(model.day) {
		model.slotCursor = max(len(model.day)-1, 0)
	}
	return model
}

func (model Model) notify(text string) (tea.Model, tea.Cmd) {
	model.toastID++
	model.toast = text
	id := model.toastID
	return model, tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func loginError(err error) string {
	if errors.Is(err, domain.ErrUnauthorized) {
		return "Invalid email or password"
	}
	return backend.Message(err)
}

func (model Model) selected() (domain.Booking, bool) {
	if model.cursor < 0 || model.cursor >= len(model.snap.Rows) {
		return domain.Booking{}, false
	}
	return model.snap.Rows[model.cursor], true
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch model.mode {
	case modeSearch:
		return model.handleSearchKeys(message)
	case modeDetail:
		if key.Matches(message, model.keys.Back, model.keys.View, model.keys.Quit) {
			model.mode = modeList
		}
		return model, nil
	case modeConfirmDelete:
		return model.handleDeleteKeys(message)
	case modeRefund:
		return model.handleRefundKeys(message)
	case modeSlots:
		return model.handleSlotKeys(message)
	case modeSlotDate:
		return model.handleSlotDateKeys(message)
	case modeLogin:
		return model.handleLoginKeys(message)
	}
	return model.handleListKeys(message)
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.snap.Rows)-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.NextPage):
		model.list.Dispatch(liststate.NextPage{})
		model.cursor = 0
	case key.Matches(message, model.keys.PrevPage):
		model.list.Dispatch(liststate.PrevPage{})
		model.cursor = 0
	case key.Matches(message, model.keys.FirstPage):
		model.list.Dispatch(liststate.FirstPage{})
		model.cursor = 0
	case key.Matches(message, model.keys.LastPage):
		model.list.Dispatch(liststate.LastPage{})
		model.cursor = 0
	case key.Matches(message, model.keys.Bigger):
		model.list.Dispatch(liststate.SetPageSize{Size: stepPageSize(model.snap.View.PageSize, 1)})
	case key.Matches(message, model.keys.Smaller):
		model.list.Dispatch(liststate.SetPageSize{Size: stepPageSize(model.snap.View.PageSize, -1)})

	case key.Matches(message, model.keys.Search):
		model.mode = modeSearch
		model.search.SetValue(model.snap.Input)
		model.search.CursorEnd()
		return model, model.search.Focus()
	case key.Matches(message, model.keys.Sort):
		idx := int(message.Runes[0] - '1')
		model.list.Dispatch(liststate.SortBy{Column: liststate.Columns[idx]})
	case key.Matches(message, model.keys.Refresh):
		model.list.Refresh()

	case key.Matches(message, model.keys.View):
		if _, ok := model.selected(); ok {
			model.mode = modeDetail
		}
	case key.Matches(message, model.keys.Delete):
		if _, ok := model.selected(); ok && !model.busy {
			model.mode = modeConfirmDelete
		}
	case key.Matches(message, model.keys.Refund):
		b, ok := model.selected()
		if !ok || model.busy {
			return model, nil
		}
		if b.Refunded() {
			return model.notify("Booking is already refunded")
		}
		model.mode = modeRefund
		model.refundFocus = 0
		model.refundAmount.SetValue(b.TotalPrice.String())
		model.refundReason.SetValue("")
		model.refundReason.Blur()
		return model, model.refundAmount.Focus()

	case key.Matches(message, model.keys.Slots):
		model.mode = modeSlots
		if model.date == "" {
			return model.loadDay(domain.FormatDate(model.now()))
		}
		return model.loadDay(model.date)
	}
	return model, nil
}

// stepPageSize moves to the neighbouring entry of liststate.PageSizes.
func stepPageSize(current, step int) int {
	idx := slices.Index(liststate.PageSizes, current)
	if idx < 0 {
		return liststate.DefaultPageSize
	}
	idx = min(max(idx+step, 0), len(liststate.PageSizes)-1)
	return liststate.PageSizes[idx]
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		model.mode = modeList
		model.search.Blur()
		return model, nil
	case tea.KeyEsc:
		model.mode = modeList
		model.search.Blur()
		if model.search.Value() != "" {
			model.search.SetValue("")
			model.list.Type("")
		}
		return model, nil
	}

	before := model.search.Value()
	var cmd tea.Cmd
	model.search, cmd = model.search.Update(message)
	if after := model.search.Value(); after != before {
		model.list.Type(after)
		model.cursor = 0
	}
	return model, cmd
}

func (model Model) handleDeleteKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Confirm):
		model.mode = modeList
		b, ok := model.selected()
		if !ok {
			return model, nil
		}
		model.busy = true
		list, ctx := model.list, model.ctx
		return model, func() tea.Msg {
			msg, err := list.Delete(ctx, b.ID)
			return deleteDoneMsg{message: msg, err: err}
		}
	default:
		model.mode = modeList
	}
	return model, nil
}

func (model Model) handleRefundKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back):
		model.mode = modeList
		model.refundAmount.Blur()
		model.refundReason.Blur()
		return model, nil

	case key.Matches(message, model.keys.Next):
		model.refundFocus = 1 - model.refundFocus
		if model.refundFocus == 0 {
			model.refundReason.Blur()
			return model, model.refundAmount.Focus()
		}
		model.refundAmount.Blur()
		return model, model.refundReason.Focus()

	case message.Type == tea.KeyEnter:
		b, ok := model.selected()
		if !ok {
			model.mode = modeList
			return model, nil
		}
		amount, err := domain.ParseAmount(model.refundAmount.Value())
		if err != nil {
			return model.notify("Enter a valid amount")
		}
		reason := model.refundReason.Value()
		if reason == "" {
			return model.notify("Please fill in all required fields")
		}

		model.mode = modeList
		model.busy = true
		list, ctx := model.list, model.ctx
		return model, func() tea.Msg {
			outcome, err := list.Refund(ctx, b.ID, amount, reason)
			return refundDoneMsg{outcome: outcome, err: err}
		}
	}

	var cmd tea.Cmd
	if model.refundFocus == 0 {
		model.refundAmount, cmd = model.refundAmount.Update(message)
	} else {
		model.refundReason, cmd = model.refundReason.Update(message)
	}
	return model, cmd
}

func (model Model) loadDay(date string) (tea.Model, tea.Cmd) {
	model.busy = true
	slots, ctx := model.slots, model.ctx
	return model, func() tea.Msg {
		day, list, err := slots.Day(ctx, date)
		if err != nil {
			return slotsMsg{date: date, err: err}
		}
		return slotsMsg{date: day, slots: list}
	}
}

func (model Model) handleSlotKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Back), key.Matches(message, model.keys.Quit):
		model.mode = modeList
	case key.Matches(message, model.keys.Up):
		if model.slotCursor > 0 {
			model.slotCursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.slotCursor < len(model.day)-1 {
			model.slotCursor++
		}
	case key.Matches(message, model.keys.PrevDay):
		return model.loadDay(model.shiftDate(-1))
	case key.Matches(message, model.keys.NextDay):
		return model.loadDay(model.shiftDate(1))
	case key.Matches(message, model.keys.ChangeDate):
		model.mode = modeSlotDate
		model.dateInput.SetValue(model.date)
		return model, model.dateInput.Focus()
	case key.Matches(message, model.keys.Toggle):
		if model.busy || model.slotCursor >= len(model.day) {
			return model, nil
		}
		slot := model.day[model.slotCursor]
		if !slot.Mutable() {
			return model.notify("Booked slots cannot be changed")
		}
		model.busy = true
		slots, ctx, date := model.slots, model.ctx, model.date
		return model, func() tea.Msg {
			list, err := slots.Toggle(ctx, date, slot)
			return slotsMsg{date: date, slots: list, err: err}
		}
	}
	return model, nil
}

func (model Model) shiftDate(days int) string {
	t, err := domain.ParseDate(model.date)
	if err != nil {
		t = model.now()
	}
	return domain.FormatDate(t.AddDate(0, 0, days))
}

func (model Model) handleSlotDateKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.mode = modeSlots
		model.dateInput.Blur()
		return model, nil
	case tea.KeyEnter:
		model.mode = modeSlots
		model.dateInput.Blur()
		date, err := domain.NormalizeDate(model.dateInput.Value())
		if err != nil {
			return model.notify(err.Error())
		}
		model.slotCursor = 0
		return model.loadDay(date)
	}

	var cmd tea.Cmd
	model.dateInput, cmd = model.dateInput.Update(message)
	return model, cmd
}

func (model Model) handleLoginKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Next):
		model.loginFocus = 1 - model.loginFocus
		if model.loginFocus == 0 {
			model.password.Blur()
			return model, model.email.Focus()
		}
		model.email.Blur()
		return model, model.password.Focus()

	case message.Type == tea.KeyEnter:
		if model.loginFocus == 0 {
			model.loginFocus = 1
			model.email.Blur()
			return model, model.password.Focus()
		}
		if model.busy {
			return model, nil
		}
		model.busy = true
		auth, ctx := model.auth, model.ctx
		email, password := model.email.Value(), model.password.Value()
		return model, func() tea.Msg {
			_, err := auth.Login(ctx, email, password)
			return loginDoneMsg{err: err}
		}
	}

	var cmd tea.Cmd
	if model.loginFocus == 0 {
		model.email, cmd = model.email.Update(message)
	} else {
		model.password, cmd = model.password.Update(message)
	}
	return model, cmd
}
