package bot

import (
	"sync"
	"time"
)

// State names a step in the bot conversation. Every chat is always in
// exactly one state; free-text input is interpreted against it.
type State string

const (
	StateIdle State = "idle"

	// linking a chat to an employee
	StateAwaitingPhone State = "awaiting_phone"

	// self-registration of a new member
	StateAwaitingName     State = "awaiting_name"
	StateAwaitingRegPhone State = "awaiting_reg_phone"

	// leave request draft
	StateAwaitingLeaveType  State = "awaiting_leave_type"
	StateAwaitingLeaveStart State = "awaiting_leave_start"
	StateAwaitingLeaveEnd   State = "awaiting_leave_end"
	StateAwaitingLeaveNote  State = "awaiting_leave_note"
)

// Session is the per-chat conversation state. EmployeeID is set once
// the chat has been linked via phone verification and survives state
// resets; the draft fields only live for the flow that uses them.
type Session struct {
	ChatID     int64
	State      State
	EmployeeID string
	Name       string

	LeaveType  string
	LeaveStart string
	LeaveEnd   string

	UpdatedAt time.Time
}

// Verified reports whether the chat is linked to an employee.
func (s *Session) Verified() bool {
	return s.EmployeeID != ""
}

// ResetFlow drops any in-progress flow but keeps the employee link.
func (s *Session) ResetFlow() {
	s.State = StateIdle
	s.Name = ""
	s.LeaveType = ""
	s.LeaveStart = ""
	s.LeaveEnd = ""
}

// SessionStore holds conversation state per chat, guarded by a mutex
// so concurrent update handlers never race on the same session.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the chat's session, creating an idle one on first
// contact.
func (st *SessionStore) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = &Session{ChatID: chatID, State: StateIdle, UpdatedAt: time.Now()}
		st.sessions[chatID] = s
	}
	return s
}

// Update applies fn to the chat's session under the store lock.
func (st *SessionStore) Update(chatID int64, fn func(*Session)) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[chatID]
	if !ok {
		s = &Session{ChatID: chatID, State: StateIdle}
		st.sessions[chatID] = s
	}
	fn(s)
	s.UpdatedAt = time.Now()
}

// Delete forgets the chat entirely, unlinking the employee.
func (st *SessionStore) Delete(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, chatID)
}

// PruneIdle drops sessions that have not been touched for the given
// duration and are not mid-flow, keeping the map from growing without
// bound.
func (st *SessionStore) PruneIdle(maxAge time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	pruned := 0
	for chatID, s := range st.sessions {
		if s.State == StateIdle && !s.Verified() && s.UpdatedAt.Before(cutoff) {
			delete(st.sessions, chatID)
			pruned++
		}
	}
	return pruned
}
