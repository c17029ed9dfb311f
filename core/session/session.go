package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/assignment"
	"github.com/wcccd/mihistory/core/consult"
	"github.com/wcccd/mihistory/core/quiz"
)

type (
	// Residency is a self-asserted flag plus location; it biases prompt
	// framing only and never gates consultation access.
	Residency struct {
		Verified bool   `json:"verified"`
		Location string `json:"location,omitempty"`
	}

	// Session owns all mutable per-user state. Sessions are fully isolated
	// from each other; there are no cross-session counters or ledgers.
	Session struct {
		ID        uuid.UUID
		CreatedAt time.Time // UTC
		LastSeen  time.Time // UTC

		Residency    Residency
		Ledger       *consult.Ledger
		Progress     *assignment.Progress
		QuizAttempts quiz.AttemptCounter
	}
)

// New constructs a fresh session with empty state for the given specialist
// catalog.
func New(specialistIDs []string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		LastSeen:     now,
		Ledger:       consult.NewLedger(),
		Progress:     assignment.NewProgress(specialistIDs...),
		QuizAttempts: quiz.NewAttemptCounter(),
	}
}

// VerifyResidency records a self-reported Michigan city/ZIP. No external
// validation is performed; the flag only shapes prompt framing.
func (s *Session) VerifyResidency(city, zip string) {
	s.Residency = Residency{
		Verified: true,
		Location: fmt.Sprintf("%s, Michigan %s", core.CleanString(city), core.CleanString(zip)),
	}
}

func (s *Session) Touch(now time.Time) {
	s.LastSeen = now.UTC()
}

// Expired reports whether the session has been idle longer than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.UTC().Sub(s.LastSeen) > ttl
}
