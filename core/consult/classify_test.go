package consult

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string // substring; exact for Success
	}{
		{name: "success passes text through", outcome: Outcome{Kind: Success, Text: "Detroit was founded in 1701."}, want: "Detroit was founded in 1701."},
		{name: "misconfigured", outcome: Outcome{Kind: Misconfigured}, want: "Server Configuration Issue"},
		{name: "auth error", outcome: Outcome{Kind: AuthError}, want: "API Key Issue"},
		{name: "rate limited", outcome: Outcome{Kind: RateLimited}, want: "wait a moment and try again"},
		{name: "bad request", outcome: Outcome{Kind: BadRequest}, want: "rephrase your question"},
		{name: "server error carries status", outcome: Outcome{Kind: ServerError, Status: 503}, want: "Status 503"},
		{name: "timeout", outcome: Outcome{Kind: Timeout}, want: "taking too long to respond"},
		{name: "transport error", outcome: Outcome{Kind: TransportError}, want: "Connection Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.outcome)
			if tt.outcome.Kind == Success {
				if got != tt.want {
					t.Errorf("Classify() = %q, want %q", got, tt.want)
				}
			} else if !strings.Contains(got, tt.want) {
				t.Errorf("Classify() = %q, missing %q", got, tt.want)
			}

			// deterministic: same kind, same template
			if again := Classify(tt.outcome); again != got {
				t.Error("Classify() is not deterministic")
			}
		})
	}
}

func TestClassifyDistinctTemplates(t *testing.T) {
	kinds := []OutcomeKind{Misconfigured, AuthError, RateLimited, BadRequest, ServerError, Timeout, TransportError}
	seen := make(map[string]OutcomeKind, len(kinds))
	for _, kind := range kinds {
		msg := Classify(Outcome{Kind: kind, Status: 500})
		if prev, ok := seen[msg]; ok {
			t.Errorf("kinds %v and %v share the message %q", prev, kind, msg)
		}
		seen[msg] = kind
	}
}
