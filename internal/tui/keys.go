package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the admin console.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Pagination.
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Bigger    key.Binding // Next page size.
	Smaller   key.Binding // Previous page size.

	Search  key.Binding
	Sort    key.Binding // Followed by a column digit.
	Refresh key.Binding

	// Row actions.
	View   key.Binding
	Delete key.Binding
	Refund key.Binding

	// Slot manager.
	Slots      key.Binding
	Toggle     key.Binding
	PrevDay    key.Binding
	NextDay    key.Binding
	ChangeDate key.Binding

	Confirm key.Binding
	Back    key.Binding
	Next    key.Binding // Next input field.
	Quit    key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "previous page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	Bigger: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more rows"),
	),
	Smaller: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer rows"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
		key.WithHelp("1-7", "sort column"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reload"),
	),
	View: key.NewBinding(
		key.WithKeys("enter", "v"),
		key.WithHelp("↵", "details"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Refund: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refund"),
	),
	Slots: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time slots"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("↵", "block/unblock"),
	),
	PrevDay: key.NewBinding(
		key.WithKeys("[", "left"),
		key.WithHelp("[", "previous day"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("]", "right"),
		key.WithHelp("]", "next day"),
	),
	ChangeDate: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "pick date"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("↵", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
