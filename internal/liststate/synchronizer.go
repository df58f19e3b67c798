package liststate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Source interface {
	ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error)
	DeleteCustomer(ctx context.Context, id string) (string, error)
}

type Refunder interface {
	Refund(ctx context.Context, b *domain.Booking, amount domain.Amount, reason string) (*domain.RefundOutcome, error)
}

// Snapshot is a rendered view of the model. Rows are already sorted.
type Snapshot struct {
	View         ViewState
	Input        string
	Sort         Sort
	Rows         []domain.Booking
	Loading      bool
	Err          string
	Unauthorized bool
}

type Option func(*Synchronizer)

func WithDebounce(d time.Duration) Option {
	return func(s *Synchronizer) { s.debounce = NewDebouncer(d) }
}

// Synchronizer keeps a Model in step with the backend. Each fetch gets a
// generation number; starting a new fetch cancels the previous one and
// answers from older generations are dropped.
type Synchronizer struct {
	ctx      context.Context
	source   Source
	refunder Refunder
	debounce *Debouncer
	logger   logger.Logger

	mu      sync.Mutex
	model   Model
	gen     uint64
	cancel  context.CancelFunc
	closed  bool
	updates chan Snapshot
}

func New(
	ctx context.Context,
	source Source,
	refunder Refunder,
	initial ViewState,
	logger logger.Logger,
	opts ...Option,
) *Synchronizer {
	s := &Synchronizer{
		ctx:      ctx,
		source:   source,
		refunder: refunder,
		debounce: NewDebouncer(DefaultDebounce),
		logger:   logger,
		model:    Model{View: initial, Input: initial.Search},
		updates:  make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start issues the first fetch for the restored view.
func (s *Synchronizer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetchLocked()
	s.publishLocked()
}

// Type records a keystroke in the search box. The term is committed
// once input has been idle for the debounce window.
func (s *Synchronizer) Type(text string) {
	s.Dispatch(Input{Text: text})
	s.debounce.Trigger(func() {
		s.Dispatch(CommitSearch{Term: text})
	})
}

// Dispatch applies a and fetches if the page, size or committed search
// changed.
func (s *Synchronizer) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	before := s.model.View.key()
	s.model = Reduce(s.model, a)
	if s.model.View.key() != before {
		s.fetchLocked()
	}
	s.publishLocked()
}

// Refresh refetches the current page.
func (s *Synchronizer) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.fetchLocked()
	s.publishLocked()
}

func (s *Synchronizer) fetchLocked() {
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel

	q := s.model.View.WireQuery()
	s.model = Reduce(s.model, fetchStarted{})

	go s.load(ctx, cancel, gen, q)
}

func (s *Synchronizer) load(ctx context.Context, cancel context.CancelFunc, gen uint64, q domain.PageQuery) {
	defer cancel()

	page, err := s.source.ListCustomers(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.closed {
		s.logger.Debug("stale booking page dropped",
			logger.Int("page", q.Page),
			logger.String("search", q.Search),
		)
		return
	}
	s.cancel = nil

	if err != nil {
		s.logger.Warn("failed to load bookings",
			logger.Int("page", q.Page),
			logger.String("error", err.Error()),
		)
		s.model = Reduce(s.model, loadFailed{
			message:      backend.Message(err),
			unauthorized: errors.Is(err, domain.ErrUnauthorized),
		})
	} else {
		s.model = Reduce(s.model, pageLoaded{page: page})
	}
	s.publishLocked()
}

// Delete removes a booking. The row leaves the page only after the
// backend confirmed; on failure the page is left as it was.
func (s *Synchronizer) Delete(ctx context.Context, id string) (string, error) {
	msg, err := s.source.DeleteCustomer(ctx, id)
	if err != nil {
		s.noteUnauthorized(err)
		return "", fmt.Errorf("delete booking %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.model = Reduce(s.model, rowDeleted{id: id})
	s.publishLocked()

	return msg, nil
}

// Refund refunds a booking of the current page through its payment
// provider and refetches the page on success.
func (s *Synchronizer) Refund(ctx context.Context, id string, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.model.Rows, func(b domain.Booking) bool { return b.ID == id })
	var booking domain.Booking
	if idx >= 0 {
		booking = s.model.Rows[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		return nil, fmt.Errorf("refund booking %s: %w", id, domain.ErrNotFound)
	}

	outcome, err := s.refunder.Refund(ctx, &booking, amount, reason)
	if err != nil {
		s.noteUnauthorized(err)
		return nil, fmt.Errorf("refund booking %s: %w", id, err)
	}

	s.Refresh()
	return outcome, nil
}

func (s *Synchronizer) noteUnauthorized(err error) {
	if !errors.Is(err, domain.ErrUnauthorized) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.model = Reduce(s.model, unauthorized{})
	s.publishLocked()
}

func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Synchronizer) snapshotLocked() Snapshot {
	m := s.model
	return Snapshot{
		View:         m.View,
		Input:        m.Input,
		Sort:         m.Sort,
		Rows:         m.Sort.Apply(m.Rows),
		Loading:      m.Loading,
		Err:          m.Err,
		Unauthorized: m.Unauthorized,
	}
}

// Updates delivers the latest snapshot after every change. Slow readers
// only ever see the most recent one.
func (s *Synchronizer) Updates() <-chan Snapshot {
	return s.updates
}

func (s *Synchronizer) publishLocked() {
	if s.closed {
		return
	}
	snap := s.snapshotLocked()
	select {
	case s.updates <- snap:
		return
	default:
	}
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- snap:
	default:
	}
}

// Close stops the debounce timer, cancels any fetch in flight and closes
// Updates.
func (s *Synchronizer) Close() {
	s.debounce.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	close(s.updates)
}
