package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// waitCalls waits for calls made from notification goroutines.
func waitCalls(t *testing.T, m *mock.Mock, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(m.Calls) >= n
	}, time.Second, 5*time.Millisecond)
}
