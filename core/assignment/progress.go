package assignment

import (
	"errors"
	"time"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/specialist"
)

var (
	// errors
	ErrNotEnoughConsultations = errors.New("at least 3 consultations are required before submitting a reflection")
	ErrOutOfBand              = errors.New("reflection must be between 200 and 300 words")
	ErrNoPendingQuestion      = errors.New("no asked question is pending a response")
)

// Completion gates for Assignment 1.
const (
	MinConsultations   = 3
	MinReflectionWords = 200
	MaxReflectionWords = 300
)

type (
	AskedQuestion struct {
		Question  string    `json:"question"`
		Timestamp time.Time `json:"timestamp"` // UTC
	}

	ReceivedResponse struct {
		Question  string    `json:"question"`
		Response  string    `json:"response"`
		Timestamp time.Time `json:"timestamp"` // UTC
	}

	record struct {
		asked     []AskedQuestion
		received  []ReceivedResponse
		notes     string
		essay     string
		completed bool
	}

	// Progress tracks one session's assignment state across all specialists.
	// The asked and received sequences keep a 1:1 positional correspondence;
	// completion is only ever entered through SubmitReflection.
	Progress struct {
		ids     []string // catalog order
		records map[string]*record
	}
)

// NewProgress initializes empty per-specialist records for the given catalog.
func NewProgress(specialistIDs ...string) *Progress {
	prog := &Progress{
		ids:     make([]string, 0, len(specialistIDs)),
		records: make(map[string]*record, len(specialistIDs)),
	}
	for _, id := range specialistIDs {
		if _, ok := prog.records[id]; !ok {
			prog.ids = append(prog.ids, id)
		}
		prog.records[id] = &record{}
	}
	return prog
}

func (prog *Progress) get(id string) (*record, error) {
	rec, ok := prog.records[id]
	if !ok {
		return nil, specialist.ErrNotFound
	}
	return rec, nil
}

// AskQuestion appends to the specialist's asked-question sequence. It does not
// call the completion backend; orchestration lives in the consult service.
func (prog *Progress) AskQuestion(id, question string, at time.Time) error {
	rec, err := prog.get(id)
	if err != nil {
		return err
	}
	rec.asked = append(rec.asked, AskedQuestion{Question: question, Timestamp: at})
	return nil
}

// RecordResponse appends the paired response for the earliest unanswered
// question. Must be called exactly once per AskQuestion.
func (prog *Progress) RecordResponse(id, question, response string, at time.Time) error {
	rec, err := prog.get(id)
	if err != nil {
		return err
	}
	if len(rec.received) >= len(rec.asked) {
		return ErrNoPendingQuestion
	}
	rec.received = append(rec.received, ReceivedResponse{Question: question, Response: response, Timestamp: at})
	return nil
}

// SaveNotes overwrites the specialist's notes; idempotent.
func (prog *Progress) SaveNotes(id, notes string) error {
	rec, err := prog.get(id)
	if err != nil {
		return err
	}
	rec.notes = notes
	return nil
}

// SaveEssay overwrites the specialist's reflection essay; idempotent. The text
// is retained even when its word count is out of band - only completion is
// gated, never the draft.
func (prog *Progress) SaveEssay(id, essay string) error {
	rec, err := prog.get(id)
	if err != nil {
		return err
	}
	rec.essay = essay
	return nil
}

// SubmitReflection finalizes the specialist's essay and marks the specialist
// completed. The transition is one-way; there is no un-submit. All prior state
// is left untouched on failure.
func (prog *Progress) SubmitReflection(id string) error {
	rec, err := prog.get(id)
	if err != nil {
		return err
	}
	if len(rec.asked) < MinConsultations {
		return ErrNotEnoughConsultations
	}
	if wc := core.WordCount(rec.essay); wc < MinReflectionWords || wc > MaxReflectionWords {
		return ErrOutOfBand
	}
	rec.completed = true
	return nil
}

func (prog *Progress) Asked(id string) ([]AskedQuestion, error) {
	rec, err := prog.get(id)
	if err != nil {
		return nil, err
	}
	asked := make([]AskedQuestion, len(rec.asked))
	copy(asked, rec.asked)
	return asked, nil
}

func (prog *Progress) Received(id string) ([]ReceivedResponse, error) {
	rec, err := prog.get(id)
	if err != nil {
		return nil, err
	}
	received := make([]ReceivedResponse, len(rec.received))
	copy(received, rec.received)
	return received, nil
}

func (prog *Progress) AskedCount(id string) (int, error) {
	rec, err := prog.get(id)
	if err != nil {
		return 0, err
	}
	return len(rec.asked), nil
}

func (prog *Progress) Notes(id string) (string, error) {
	rec, err := prog.get(id)
	if err != nil {
		return "", err
	}
	return rec.notes, nil
}

func (prog *Progress) Essay(id string) (string, error) {
	rec, err := prog.get(id)
	if err != nil {
		return "", err
	}
	return rec.essay, nil
}

func (prog *Progress) Completed(id string) (bool, error) {
	rec, err := prog.get(id)
	if err != nil {
		return false, err
	}
	return rec.completed, nil
}

// SpecialistIDs returns the catalog ids in order.
func (prog *Progress) SpecialistIDs() []string {
	ids := make([]string, len(prog.ids))
	copy(ids, prog.ids)
	return ids
}

// Overall derives (total questions across specialists, completed specialist
// count). Recomputed on every call; never stored.
func (prog *Progress) Overall() (totalQuestions, completedCount int) {
	for _, id := range prog.ids {
		rec := prog.records[id]
		totalQuestions += len(rec.asked)
		if rec.completed {
			completedCount++
		}
	}
	return totalQuestions, completedCount
}

// Complete reports whether the whole assignment is done: every specialist
// completed and at least MinConsultations questions per specialist overall.
func (prog *Progress) Complete() bool {
	total, completed := prog.Overall()
	return completed == len(prog.ids) && total >= MinConsultations*len(prog.ids)
}
