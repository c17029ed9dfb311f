package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wcccd/mihistory/core/session"
)

// SessionRepository keeps sessions in process memory; there is no durable
// persistence by design. The mutex only guards the map - each session's state
// is owned by its single user and never shared across sessions.
type SessionRepository struct {
	mu            sync.Mutex
	sessions      map[uuid.UUID]*session.Session
	specialistIDs []string
	ttl           time.Duration
}

func NewSessionRepository(specialistIDs []string, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions:      make(map[uuid.UUID]*session.Session),
		specialistIDs: specialistIDs,
		ttl:           ttl,
	}
}

func (repo *SessionRepository) Get(id uuid.UUID) (*session.Session, bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	sess, ok := repo.sessions[id]
	return sess, ok
}

// GetOrCreate returns the live session for id, or constructs a fresh one when
// id is unknown, expired or zero.
func (repo *SessionRepository) GetOrCreate(id uuid.UUID) *session.Session {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := time.Now().UTC()
	if sess, ok := repo.sessions[id]; ok && !sess.Expired(now, repo.ttl) {
		sess.Touch(now)
		return sess
	}
	sess := session.New(repo.specialistIDs)
	repo.sessions[sess.ID] = sess
	return sess
}

func (repo *SessionRepository) Delete(id uuid.UUID) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.sessions, id)
}

// PurgeExpired tears down idle sessions and reports how many were removed.
func (repo *SessionRepository) PurgeExpired(now time.Time) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var purged int
	for id, sess := range repo.sessions {
		if sess.Expired(now, repo.ttl) {
			delete(repo.sessions, id)
			purged++
		}
	}
	return purged
}

func (repo *SessionRepository) Len() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.sessions)
}
