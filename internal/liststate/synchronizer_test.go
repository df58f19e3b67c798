package liststate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// fakeSource answers list calls through respond and records every query.
type fakeSource struct {
	mu      sync.Mutex
	queries []domain.PageQuery
	respond func(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error)

	deleteErr error
	deleted   []string
}

func (f *fakeSource) ListCustomers(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	respond := f.respond
	f.mu.Unlock()
	return respond(ctx, q)
}

func (f *fakeSource) DeleteCustomer(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return "Customer deleted", nil
}

func (f *fakeSource) Queries() []domain.PageQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.PageQuery(nil), f.queries...)
}

func staticPage(rows ...domain.Booking) func(context.Context, domain.PageQuery) (*domain.BookingPage, error) {
	return func(context.Context, domain.PageQuery) (*domain.BookingPage, error) {
		return &domain.BookingPage{Bookings: rows, TotalPages: 5}, nil
	}
}

type fakeRefunder struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeRefunder) Refund(_ context.Context, b *domain.Booking, amount domain.Amount, reason string) (*domain.RefundOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, b.ID)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RefundOutcome{Method: b.PaymentMethod, Message: "refunded"}, nil
}

func settled(s *Synchronizer) func() bool {
	return func() bool { return !s.Snapshot().Loading }
}

func TestSynchronizer_InitialFetchFromURL(t *testing.T) {
	src := &fakeSource{respond: staticPage(domain.Booking{ID: "b1"})}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageIndex: 2, PageSize: 20, Search: "Smith"}, newTestLogger(t))
	defer s.Close()

	s.Start()

	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	assert.Equal(t, []domain.PageQuery{{Page: 3, Limit: 20, Search: "Smith"}}, src.Queries())
	snap := s.Snapshot()
	assert.Equal(t, "Smith", snap.Input)
	assert.Equal(t, 5, snap.View.TotalPages)
	assert.Len(t, snap.Rows, 1)
}

func TestSynchronizer_TypingBurstFetchesOnceFromFirstPage(t *testing.T) {
	src := &fakeSource{respond: staticPage()}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageIndex: 3, PageSize: 10}, newTestLogger(t),
		WithDebounce(40*time.Millisecond))
	defer s.Close()

	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	for _, text := range []string{"S", "Sm", "Smi", "Smit", "Smith"} {
		s.Type(text)
		time.Sleep(5 * time.Millisecond)
	}
	assert.Len(t, src.Queries(), 1, "keystrokes inside the window must not fetch")

	require.Eventually(t, func() bool { return len(src.Queries()) == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	queries := src.Queries()
	require.Len(t, queries, 2)
	assert.Equal(t, domain.PageQuery{Page: 1, Limit: 10, Search: "Smith"}, queries[1])
	assert.Equal(t, 0, s.Snapshot().View.PageIndex)
}

func TestSynchronizer_PaginationFetchesOncePerChange(t *testing.T) {
	src := &fakeSource{respond: staticPage()}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()

	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	s.Dispatch(NextPage{})
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	s.Dispatch(SetPageSize{Size: 20})
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	s.Dispatch(SortBy{Column: ColumnName})

	assert.Equal(t, []domain.PageQuery{
		{Page: 1, Limit: 10},
		{Page: 2, Limit: 10},
		{Page: 1, Limit: 20},
	}, src.Queries())
}

func TestSynchronizer_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	src := &fakeSource{}
	src.respond = func(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error) {
		if q.Page == 1 {
			<-release
			return &domain.BookingPage{Bookings: []domain.Booking{{ID: "stale"}}, TotalPages: 9}, nil
		}
		return &domain.BookingPage{Bookings: []domain.Booking{{ID: "fresh"}}, TotalPages: 2}, nil
	}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10, TotalPages: 3}, newTestLogger(t))
	defer s.Close()

	s.Start()
	s.Dispatch(NextPage{})
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	close(release)
	time.Sleep(50 * time.Millisecond)

	snap := s.Snapshot()
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "fresh", snap.Rows[0].ID)
	assert.Equal(t, 2, snap.View.TotalPages)
}

func TestSynchronizer_SupersededFetchIsCancelled(t *testing.T) {
	cancelled := make(chan struct{})
	src := &fakeSource{}
	src.respond = func(ctx context.Context, q domain.PageQuery) (*domain.BookingPage, error) {
		if q.Page == 1 {
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		}
		return &domain.BookingPage{}, nil
	}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10, TotalPages: 3}, newTestLogger(t))
	defer s.Close()

	s.Start()
	s.Dispatch(NextPage{})

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("superseded fetch was not cancelled")
	}
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)
	assert.Empty(t, s.Snapshot().Err)
}

func TestSynchronizer_UnauthorizedFlagsLogin(t *testing.T) {
	src := &fakeSource{respond: func(context.Context, domain.PageQuery) (*domain.BookingPage, error) {
		return nil, domain.ErrUnauthorized
	}}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()

	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	snap := s.Snapshot()
	assert.True(t, snap.Unauthorized)
	assert.NotEmpty(t, snap.Err)
}

func TestSynchronizer_LoadErrorIsShown(t *testing.T) {
	src := &fakeSource{respond: func(context.Context, domain.PageQuery) (*domain.BookingPage, error) {
		return nil, errors.New("connection refused")
	}}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()

	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	snap := s.Snapshot()
	assert.False(t, snap.Unauthorized)
	assert.Equal(t, "connection refused", snap.Err)
}

func TestSynchronizer_DeleteRemovesOnlyThatRow(t *testing.T) {
	src := &fakeSource{respond: staticPage(domain.Booking{ID: "a"}, domain.Booking{ID: "b"}, domain.Booking{ID: "c"})}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()
	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	msg, err := s.Delete(context.Background(), "b")

	require.NoError(t, err)
	assert.Equal(t, "Customer deleted", msg)
	assert.Equal(t, []string{"a", "c"}, ids(s.Snapshot().Rows))
	assert.Len(t, src.Queries(), 1, "delete must not refetch")
}

func TestSynchronizer_DeleteFailureLeavesPage(t *testing.T) {
	src := &fakeSource{
		respond:   staticPage(domain.Booking{ID: "a"}, domain.Booking{ID: "b"}),
		deleteErr: errors.New("backend down"),
	}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()
	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	_, err := s.Delete(context.Background(), "b")

	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(s.Snapshot().Rows))
}

func TestSynchronizer_RefundRefetchesOnSuccess(t *testing.T) {
	src := &fakeSource{respond: staticPage(domain.Booking{ID: "a", PaymentMethod: domain.PaymentMethodMollie})}
	ref := &fakeRefunder{}
	s := New(context.Background(), src, ref, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()
	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	out, err := s.Refund(context.Background(), "a", 10, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodMollie, out.Method)
	require.Eventually(t, func() bool { return len(src.Queries()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestSynchronizer_RefundFailureDoesNotRefetch(t *testing.T) {
	src := &fakeSource{respond: staticPage(domain.Booking{ID: "a"})}
	ref := &fakeRefunder{err: domain.ErrUnsupportedPaymentMethod}
	s := New(context.Background(), src, ref, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()
	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	_, err := s.Refund(context.Background(), "a", 10, "cancelled")

	assert.ErrorIs(t, err, domain.ErrUnsupportedPaymentMethod)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, src.Queries(), 1)
}

func TestSynchronizer_RefundUnknownRow(t *testing.T) {
	src := &fakeSource{respond: staticPage()}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))
	defer s.Close()

	_, err := s.Refund(context.Background(), "missing", 10, "r")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSynchronizer_UpdatesCarryLatestSnapshot(t *testing.T) {
	src := &fakeSource{respond: staticPage(domain.Booking{ID: "a"})}
	s := New(context.Background(), src, &fakeRefunder{}, ViewState{PageSize: 10}, newTestLogger(t))

	s.Start()
	require.Eventually(t, settled(s), time.Second, 5*time.Millisecond)

	var last Snapshot
	select {
	case last = <-s.Updates():
	case <-time.After(time.Second):
		t.Fatal("no update delivered")
	}
	assert.False(t, last.Loading)
	assert.Len(t, last.Rows, 1)

	s.Close()
	_, open := <-s.Updates()
	assert.False(t, open)
}
