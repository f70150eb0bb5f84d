package support

import "time"

// Session holds one conversation's mutable state. One instance per
// conversation, confined to a single goroutine at a time; callers that
// host multiple sessions own the locking around the session map.
type Session struct {
	ID        string
	History   []Turn
	Pending   *PendingCancellation
	CreatedAt time.Time

	cancelled    []string
	cancelledSet map[string]struct{}
}

// NewSession creates an empty session.
func NewSession(id string) *Session {
	return &Session{
		ID:           id,
		CreatedAt:    time.Now().UTC(),
		cancelledSet: make(map[string]struct{}),
	}
}

// IsCancelled reports whether the order id has been cancelled in this session.
func (s *Session) IsCancelled(orderID string) bool {
	_, ok := s.cancelledSet[orderID]
	return ok
}

// Cancel adds an order id to the cancelled set. Ids are deduplicated, so
// cancelling twice leaves a single entry and preserves the original order.
func (s *Session) Cancel(orderID string) {
	if _, ok := s.cancelledSet[orderID]; ok {
		return
	}
	s.cancelledSet[orderID] = struct{}{}
	s.cancelled = append(s.cancelled, orderID)
}

// LastCancelled returns the most recently cancelled order id.
func (s *Session) LastCancelled() (string, bool) {
	if len(s.cancelled) == 0 {
		return "", false
	}
	return s.cancelled[len(s.cancelled)-1], true
}

// CancelledCount returns how many orders have been cancelled in this session.
func (s *Session) CancelledCount() int {
	return len(s.cancelled)
}

// Reset clears history and cancellation state back to initial empty values.
func (s *Session) Reset() {
	s.History = nil
	s.Pending = nil
	s.cancelled = nil
	s.cancelledSet = make(map[string]struct{})
}
