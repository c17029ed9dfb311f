package completionsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/wcccd/mihistory/core"
	"github.com/wcccd/mihistory/core/consult"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"

	selfTestPrompt = "You are a connectivity probe."
	selfTestMsg    = "Reply with the single word: ok"
)

type (
	message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	completionRequest struct {
		Model     string    `json:"model"`
		MaxTokens int       `json:"max_tokens"`
		System    string    `json:"system"`
		Messages  []message `json:"messages"`
	}

	contentBlock struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	completionResponse struct {
		Content []contentBlock `json:"content"`
	}

	anthropicService struct {
		conf   core.AnthropicConfig
		logger core.Logger
		client *http.Client // per-call deadlines via context

		selfTestOnce sync.Once
		selfTest     consult.Outcome
	}
)

var _ consult.Client = (*anthropicService)(nil)

// NewAnthropicService returns a consult.Client backed by the Anthropic
// messages API.
func NewAnthropicService(conf *core.Config, logger core.Logger) consult.Client {
	return &anthropicService{
		conf:   conf.Anthropic,
		logger: logger,
		client: &http.Client{},
	}
}

// Complete sends a single-turn request. One attempt only; any retry is the
// user re-invoking the action.
func (svc *anthropicService) Complete(ctx context.Context, systemPrompt, userMessage string) consult.Outcome {
	ctx, cancel := context.WithTimeout(ctx, svc.conf.Timeout)
	defer cancel()
	return svc.complete(ctx, systemPrompt, userMessage)
}

// SelfTest sends a trivial probe with the short timeout. The first result is
// cached for the process; it feeds the status surface only and never stands in
// for per-call classification in Complete.
func (svc *anthropicService) SelfTest(ctx context.Context) consult.Outcome {
	svc.selfTestOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, svc.conf.SelfTestTimeout)
		defer cancel()
		svc.selfTest = svc.complete(ctx, selfTestPrompt, selfTestMsg)
	})
	return svc.selfTest
}

func (svc *anthropicService) complete(ctx context.Context, systemPrompt, userMessage string) consult.Outcome {
	// a credential absent at call time short-circuits before any network attempt
	if core.CleanString(svc.conf.APIKey) == "" {
		return consult.Outcome{Kind: consult.Misconfigured}
	}

	body, err := json.Marshal(completionRequest{
		Model:     svc.conf.Model,
		MaxTokens: svc.conf.MaxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: userMessage}},
	})
	if err != nil {
		svc.logger.Error("marshaling completion request", errors.Wrap(err, "completionsvc"))
		return consult.Outcome{Kind: consult.BadRequest}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.conf.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		svc.logger.Error("building completion request", errors.Wrap(err, "completionsvc"))
		return consult.Outcome{Kind: consult.BadRequest}
	}
	req.Header.Set("x-api-key", svc.conf.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		// distinguish deadline expiry from connection failure
		if netErr, ok := errors.Cause(err).(net.Error); ok && netErr.Timeout() {
			return consult.Outcome{Kind: consult.Timeout}
		}
		if ctx.Err() == context.DeadlineExceeded {
			return consult.Outcome{Kind: consult.Timeout}
		}
		svc.logger.Warn(fmt.Sprintf("completion transport failure: %v", err))
		return consult.Outcome{Kind: consult.TransportError}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data completionResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || len(data.Content) == 0 {
			svc.logger.Error("decoding completion response", errors.Wrap(err, "completionsvc"))
			return consult.Outcome{Kind: consult.ServerError, Status: resp.StatusCode}
		}
		return consult.Outcome{Kind: consult.Success, Text: data.Content[0].Text}
	case http.StatusUnauthorized:
		return consult.Outcome{Kind: consult.AuthError}
	case http.StatusTooManyRequests:
		return consult.Outcome{Kind: consult.RateLimited}
	case http.StatusBadRequest:
		return consult.Outcome{Kind: consult.BadRequest}
	default:
		return consult.Outcome{Kind: consult.ServerError, Status: resp.StatusCode}
	}
}
