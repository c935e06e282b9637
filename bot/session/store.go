package session

import "sync"

// Store keeps per-user sessions in memory. Updates for one user arrive
// sequentially, so the lock only guards map access.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// GetOrCreate returns the session for the user, creating an idle one when
// the user is seen for the first time.
func (s *Store) GetOrCreate(userID int64) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[userID]; ok {
		return sess
	}
	sess = &Session{UserID: userID, Phase: PhaseIdle}
	s.sessions[userID] = sess
	return sess
}

// Get returns the session for the user, or nil when none exists.
func (s *Store) Get(userID int64) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

// Reset clears the search state of the user's session back to idle.
// The display name is kept so later greetings stay personal.
func (s *Store) Reset(userID int64) *Session {
	sess := s.GetOrCreate(userID)
	name := sess.Name
	*sess = Session{UserID: userID, Name: name, Phase: PhaseIdle}
	return sess
}

// InProgress reports whether the user has an active search. It satisfies
// the router's FSM contract used to divert free-text messages.
func (s *Store) InProgress(userID int64) bool {
	s.mu.RLock()
	sess := s.sessions[userID]
	s.mu.RUnlock()
	return sess.InProgress()
}
