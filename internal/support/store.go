package support

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/omarselim0/shopmate/internal/db"
)

// SessionStore owns the live sessions for a server process. Sessions are
// never shared between goroutines without going through the store's lock.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	database *db.DB
}

// NewSessionStore creates a store. The database is optional; when present,
// reset sessions are archived into support_transcripts.
func NewSessionStore(database *db.DB) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		database: database,
	}
}

// Create starts a new session and returns its id.
func (st *SessionStore) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := NewSession(uuid.New().String())
	st.sessions[s.ID] = s
	return s
}

// Get returns the session with the given id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	return s, ok
}

// GetOrCreate returns the session with the given id, creating it when the
// id is unknown or empty.
func (st *SessionStore) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s
		}
	}
	if id == "" {
		id = uuid.New().String()
	}
	s := NewSession(id)
	st.sessions[id] = s
	return s
}

// History returns a copy of the session's turns. The copy is taken under
// the store lock so callers can read it while other requests keep
// appending to the session.
func (st *SessionStore) History(id string) ([]Turn, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	history := make([]Turn, len(s.History))
	copy(history, s.History)
	return history, true
}

// Respond runs one turn through the responder while holding the store
// lock, so two requests for the same session never mutate it concurrently.
func (st *SessionStore) Respond(responder *Responder, sessionID, text string) (*Session, Turn) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[sessionID]
	if !ok {
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		s = NewSession(sessionID)
		st.sessions[sessionID] = s
	}

	return s, responder.Respond(s, text)
}

// Reset archives the session's transcript (when a database is attached)
// and restores the session to its initial empty state.
func (st *SessionStore) Reset(ctx context.Context, id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}

	if st.database != nil {
		if err := st.archive(ctx, s); err != nil {
			return fmt.Errorf("archiving transcript: %w", err)
		}
	}

	s.Reset()
	return nil
}

// Count returns the number of live sessions.
func (st *SessionStore) Count() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) archive(ctx context.Context, s *Session) error {
	for i, turn := range s.History {
		_, err := st.database.ExecContext(ctx,
			`INSERT INTO support_transcripts (id, session_id, turn, user_message, bot_reply, intent, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), s.ID, i, turn.User, turn.Bot, string(turn.Intent), turn.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
