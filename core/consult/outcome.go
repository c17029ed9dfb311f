package consult

import "context"

// OutcomeKind is the fixed result taxonomy of one outbound completion call.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	Misconfigured
	AuthError
	RateLimited
	BadRequest
	ServerError
	Timeout
	TransportError
)

var kindNames = map[OutcomeKind]string{
	Success:        "success",
	Misconfigured:  "misconfigured",
	AuthError:      "auth_error",
	RateLimited:    "rate_limited",
	BadRequest:     "bad_request",
	ServerError:    "server_error",
	Timeout:        "timeout",
	TransportError: "transport_error",
}

func (k OutcomeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the raw, classified result of one completion call, prior to
// user-facing message rendering.
type Outcome struct {
	Kind   OutcomeKind
	Text   string // generated text; Success only
	Status int    // HTTP status; ServerError only
}

// Client performs the outbound chat completion call.
//
// Implementations must make a single attempt per call and must not retry;
// a user "retry" is a fresh, independent call. A missing credential must
// short-circuit to a Misconfigured outcome before any network attempt.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) Outcome

	// SelfTest sends a trivial probe message with a short timeout.
	// Implementations may cache the first result for the lifetime of the
	// process; the cache must never stand in for a real Complete call.
	SelfTest(ctx context.Context) Outcome
}
