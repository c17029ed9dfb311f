package consult

import (
	"context"
	"fmt"
	"time"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/assignment"
	"github.com/wcccd/mihistory/core/specialist"
)

type (
	// Request is one consultation request as collected by the UI.
	Request struct {
		Specialist       string
		Question         string
		Category         string
		Location         string
		ResidentVerified bool
	}

	// Service runs the full consultation pipeline: registry lookup, prompt
	// composition, completion call, classification, and recording into the
	// session's ledger and assignment progress.
	Service struct {
		registry *specialist.Registry
		client   Client
		logger   core.Logger
	}
)

func NewService(registry *specialist.Registry, client Client, logger core.Logger) *Service {
	return &Service{
		registry: registry,
		client:   client,
		logger:   logger,
	}
}

func (svc *Service) Registry() *specialist.Registry { return svc.registry }

// SelfTest probes the completion backend. Display-only; never a gate.
func (svc *Service) SelfTest(ctx context.Context) Outcome {
	return svc.client.SelfTest(ctx)
}

// Consult performs one exchange and records it. The asked/received sequences
// stay paired 1:1: API-layer failures are rendered into advisory text and
// recorded like any answer, never surfaced as errors. An error return means a
// domain validation failure (unknown specialist) and guarantees that nothing
// was mutated.
func (svc *Service) Consult(
	ctx context.Context,
	ledger *Ledger,
	progress *assignment.Progress,
	req Request,
) (Entry, error) {
	sp, err := svc.registry.Get(req.Specialist)
	if err != nil {
		return Entry{}, err
	}
	question := core.CleanString(req.Question)

	if err := progress.AskQuestion(sp.ID, question, time.Now().UTC()); err != nil {
		return Entry{}, err
	}

	systemPrompt, userMessage := specialist.BuildPrompt(sp, question, req.Location, req.ResidentVerified)
	outcome := svc.client.Complete(ctx, systemPrompt, userMessage)
	if outcome.Kind != Success {
		svc.logger.Warn(fmt.Sprintf("consultation with %s degraded: %s", sp.ID, outcome.Kind))
	}

	entry := Entry{
		Timestamp:  time.Now().UTC(),
		Specialist: sp.ID,
		Question:   question,
		Response:   Classify(outcome),
		Category:   core.CleanString(req.Category),
	}
	ledger.Record(entry)

	if err := progress.RecordResponse(sp.ID, entry.Question, entry.Response, entry.Timestamp); err != nil {
		return Entry{}, err // unreachable after a successful AskQuestion
	}
	return entry, nil
}
