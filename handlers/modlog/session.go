package modlog

import (
	"sync"
	"time"

	"modlog-bot/model"

	"github.com/rs/zerolog"
)

// PageSize is the fixed window of records shown per page.
const PageSize = 5

// SessionTTL is the idle timeout after which a session ends and its
// controls are stripped.
const SessionTTL = 3 * time.Minute

// State is the lifecycle position of a log session.
type State int

const (
	// StateIdle shows the kind selector; no kind chosen yet.
	StateIdle State = iota
	// StateViewing shows one page of one kind's records.
	StateViewing
	// StateEnded is terminal; the session no longer accepts input.
	StateEnded
)

// Session is one staff member's interactive view over a subject's
// moderation history. It is attached to a single message, accepts input
// only from its owner, and dies on idle timeout.
type Session struct {
	mu sync.Mutex

	MessageID  string
	ChannelID  string
	OwnerID    string
	TargetID   string
	TargetName string

	state    State
	kind     model.CaseKind
	page     int
	deadline time.Time
}

// NewSession creates an idle session owned by ownerID, browsing
// targetID's records, attached to the given message.
func NewSession(messageID, channelID, ownerID, targetID, targetName string) *Session {
	return &Session{
		MessageID:  messageID,
		ChannelID:  channelID,
		OwnerID:    ownerID,
		TargetID:   targetID,
		TargetName: targetName,
		state:      StateIdle,
		page:       1,
		deadline:   time.Now().Add(SessionTTL),
	}
}

// Owns reports whether userID is the session's invoking user. Input
// from anyone else is rejected without a state change.
func (s *Session) Owns(userID string) bool {
	return s.OwnerID == userID
}

// SelectKind moves the session to viewing page 1 of the given kind.
// Valid from Idle and from Viewing (re-selecting resets to page 1);
// a no-op once ended.
func (s *Session) SelectKind(kind model.CaseKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateEnded {
		return false
	}
	s.state = StateViewing
	s.kind = kind
	s.page = 1
	s.deadline = time.Now().Add(SessionTTL)
	return true
}

// GoToPage moves the session to the requested page of the current kind,
// clamped to [1, totalPages]. A click past a boundary re-renders the
// boundary page instead of failing.
func (s *Session) GoToPage(page, totalPages int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateViewing {
		return 0, false
	}
	s.page = ClampPage(page, totalPages)
	s.deadline = time.Now().Add(SessionTTL)
	return s.page, true
}

// Current returns the session's state, kind and page.
func (s *Session) Current() (State, model.CaseKind, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.kind, s.page
}

// End moves the session to its terminal state.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateEnded
}

// Expired reports whether the idle deadline has passed.
func (s *Session) Expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateEnded && now.After(s.deadline)
}

// TotalPages returns ceil(count / PageSize), never less than 1 so an
// empty result set still renders as a single "no records" page.
func TotalPages(count int) int {
	pages := (count + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds a requested page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Manager tracks the live sessions, keyed by the message each is
// attached to. Sessions are independent; the map is the only shared
// state and it is mutex-guarded.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	log      zerolog.Logger
}

// NewManager returns an empty session manager.
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		log:      log.With().Str("component", "modlog_sessions").Logger(),
	}
}

// Put registers a session under its message ID.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.MessageID] = s
}

// Get returns the session attached to a message, if any.
func (m *Manager) Get(messageID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[messageID]
	return s, ok
}

// SweepExpired ends and removes every session past its idle deadline,
// returning them so the caller can strip the message controls.
func (m *Manager) SweepExpired(now time.Time) []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []*Session
	for id, s := range m.sessions {
		if s.Expired(now) {
			s.End()
			delete(m.sessions, id)
			expired = append(expired, s)
			m.log.Debug().Str("message_id", id).Msg("modlog session expired")
		}
	}
	return expired
}
