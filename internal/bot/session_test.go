package bot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStoreGetCreatesIdleSession(t *testing.T) {
	store := NewSessionStore()

	s := store.Get(42)
	assert.Equal(t, int64(42), s.ChatID)
	assert.Equal(t, StateIdle, s.State)
	assert.False(t, s.Verified())

	// same chat returns the same session
	again := store.Get(42)
	assert.Same(t, s, again)
}

func TestSessionStoreUpdate(t *testing.T) {
	store := NewSessionStore()

	store.Update(7, func(s *Session) {
		s.State = StateAwaitingPhone
	})
	store.Update(7, func(s *Session) {
		s.EmployeeID = "emp-1"
		s.State = StateIdle
	})

	s := store.Get(7)
	assert.True(t, s.Verified())
	assert.Equal(t, StateIdle, s.State)
}

func TestResetFlowKeepsEmployeeLink(t *testing.T) {
	s := &Session{
		ChatID:     1,
		State:      StateAwaitingLeaveEnd,
		EmployeeID: "emp-1",
		LeaveType:  "planned",
		LeaveStart: "2025-01-06",
	}

	s.ResetFlow()

	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, "emp-1", s.EmployeeID)
	assert.Empty(t, s.LeaveType)
	assert.Empty(t, s.LeaveStart)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()
	store.Update(9, func(s *Session) { s.EmployeeID = "emp-9" })

	store.Delete(9)

	assert.False(t, store.Get(9).Verified())
}

func TestPruneIdle(t *testing.T) {
	store := NewSessionStore()

	// stale unverified session
	store.Update(1, func(s *Session) {})
	store.sessions[1].UpdatedAt = time.Now().Add(-2 * time.Hour)

	// verified session of the same age must survive
	store.Update(2, func(s *Session) { s.EmployeeID = "emp-2" })
	store.sessions[2].UpdatedAt = time.Now().Add(-2 * time.Hour)

	// mid-flow session must survive
	store.Update(3, func(s *Session) { s.State = StateAwaitingPhone })
	store.sessions[3].UpdatedAt = time.Now().Add(-2 * time.Hour)

	pruned := store.PruneIdle(time.Hour)

	assert.Equal(t, 1, pruned)
	assert.NotContains(t, store.sessions, int64(1))
	assert.Contains(t, store.sessions, int64(2))
	assert.Contains(t, store.sessions, int64(3))
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			store.Update(n%5, func(s *Session) {
				s.State = StateAwaitingPhone
			})
			store.Get(n % 5)
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < 5; i++ {
		assert.Equal(t, StateAwaitingPhone, store.Get(i).State)
	}
}
