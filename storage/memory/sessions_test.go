package memstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wcccd/mihistory/core/specialist"
)

func newTestRepo(ttl time.Duration) *SessionRepository {
	return NewSessionRepository(specialist.DefaultRegistry().IDs(), ttl)
}

func TestGetOrCreate(t *testing.T) {
	repo := newTestRepo(time.Hour)

	t.Run("zero id creates a session", func(t *testing.T) {
		sess := repo.GetOrCreate(uuid.Nil)
		assert.NotEqual(t, uuid.Nil, sess.ID)
		assert.Equal(t, 1, repo.Len())
		assert.NotNil(t, sess.Ledger)
		assert.NotNil(t, sess.Progress)
		assert.Equal(t, specialist.DefaultRegistry().IDs(), sess.Progress.SpecialistIDs())
	})

	t.Run("known id returns the same session", func(t *testing.T) {
		sess := repo.GetOrCreate(uuid.Nil)
		sess.Residency.Verified = true

		again := repo.GetOrCreate(sess.ID)
		assert.Equal(t, sess.ID, again.ID)
		assert.True(t, again.Residency.Verified, "state survives across requests")
	})

	t.Run("unknown id creates a fresh session", func(t *testing.T) {
		before := repo.Len()
		sess := repo.GetOrCreate(uuid.New())
		assert.Equal(t, before+1, repo.Len())
		assert.False(t, sess.Residency.Verified)
	})
}

func TestSessionIsolation(t *testing.T) {
	repo := newTestRepo(time.Hour)
	a := repo.GetOrCreate(uuid.Nil)
	b := repo.GetOrCreate(uuid.Nil)
	assert.NotEqual(t, a.ID, b.ID)

	a.VerifyResidency("Detroit", "48201")
	assert.NoError(t, a.Progress.AskQuestion(specialist.HistoricalExpert, "q", time.Now().UTC()))

	assert.False(t, b.Residency.Verified)
	count, err := b.Progress.AskedCount(specialist.HistoricalExpert)
	assert.NoError(t, err)
	assert.Equal(t, 0, count, "progress never leaks between sessions")
}

func TestExpiry(t *testing.T) {
	repo := newTestRepo(time.Minute)
	sess := repo.GetOrCreate(uuid.Nil)
	id := sess.ID

	// idle past the ttl
	sess.LastSeen = time.Now().UTC().Add(-2 * time.Minute)

	fresh := repo.GetOrCreate(id)
	assert.NotEqual(t, id, fresh.ID, "expired id yields a fresh session")
}

func TestPurgeExpired(t *testing.T) {
	repo := newTestRepo(time.Minute)
	live := repo.GetOrCreate(uuid.Nil)
	stale := repo.GetOrCreate(uuid.Nil)
	stale.LastSeen = time.Now().UTC().Add(-time.Hour)

	purged := repo.PurgeExpired(time.Now().UTC())
	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, repo.Len())

	_, ok := repo.Get(live.ID)
	assert.True(t, ok)
	_, ok = repo.Get(stale.ID)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(time.Hour)
	sess := repo.GetOrCreate(uuid.Nil)
	repo.Delete(sess.ID)
	_, ok := repo.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.Len())
}
