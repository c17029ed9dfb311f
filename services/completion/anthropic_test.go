package completionsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcccd/mihistory/core/consult"
	"github.com/wcccd/mihistory/tests"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (consult.Client, *httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	conf := testutil.NewConfig()
	conf.Anthropic.APIKey = "test-key"
	conf.Anthropic.BaseURL = server.URL
	return NewAnthropicService(conf, testutil.NewLogger()), server, &hits
}

func successHandler(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": text}},
		})
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq completionRequest
	var gotHeaders http.Header
	svc, _, hits := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		assert.Equal(t, messagesPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		successHandler("Michigan became a state in 1837.")(w, r)
	})

	outcome := svc.Complete(context.Background(), "You are a historian.", "When did Michigan become a state?")

	assert.Equal(t, consult.Success, outcome.Kind)
	assert.Equal(t, "Michigan became a state in 1837.", outcome.Text)
	assert.Equal(t, int32(1), *hits)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, anthropicVersion, gotHeaders.Get("anthropic-version"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))

	assert.Equal(t, "claude-3-haiku-20240307", gotReq.Model)
	assert.Equal(t, 500, gotReq.MaxTokens)
	assert.Equal(t, "You are a historian.", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "When did Michigan become a state?", gotReq.Messages[0].Content)
}

func TestCompleteStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantKind   consult.OutcomeKind
		wantStatus int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: consult.AuthError},
		{name: "rate limited", status: http.StatusTooManyRequests, wantKind: consult.RateLimited},
		{name: "bad request", status: http.StatusBadRequest, wantKind: consult.BadRequest},
		{name: "server error", status: http.StatusInternalServerError, wantKind: consult.ServerError, wantStatus: 500},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: consult.ServerError, wantStatus: 502},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			outcome := svc.Complete(context.Background(), "s", "u")
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantStatus, outcome.Status)
		})
	}
}

func TestCompleteMissingKey(t *testing.T) {
	svc, _, hits := newTestService(t, successHandler("unused"))
	impl := svc.(*anthropicService)
	impl.conf.APIKey = "   " // whitespace counts as absent

	outcome := svc.Complete(context.Background(), "s", "u")

	assert.Equal(t, consult.Misconfigured, outcome.Kind)
	assert.Equal(t, int32(0), *hits, "no network attempt may be made without a credential")
}

func TestCompleteMalformedBody(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": []}`))
	})

	outcome := svc.Complete(context.Background(), "s", "u")
	assert.Equal(t, consult.ServerError, outcome.Kind)
	assert.Equal(t, http.StatusOK, outcome.Status)
}

func TestCompleteTimeout(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		successHandler("too late")(w, r)
	})
	svc.(*anthropicService).conf.Timeout = 50 * time.Millisecond

	outcome := svc.Complete(context.Background(), "s", "u")
	assert.Equal(t, consult.Timeout, outcome.Kind)
}

func TestCompleteTransportError(t *testing.T) {
	svc, server, _ := newTestService(t, successHandler("unused"))
	server.Close() // connection refused from here on

	outcome := svc.Complete(context.Background(), "s", "u")
	assert.Equal(t, consult.TransportError, outcome.Kind)
}

func TestSelfTestCaching(t *testing.T) {
	svc, _, hits := newTestService(t, successHandler("ok"))

	first := svc.SelfTest(context.Background())
	assert.Equal(t, consult.Success, first.Kind)

	for i := 0; i < 3; i++ {
		again := svc.SelfTest(context.Background())
		assert.Equal(t, first, again)
	}
	assert.Equal(t, int32(1), *hits, "self-test result is cached after the first probe")
}

func TestSelfTestDoesNotMaskCompletion(t *testing.T) {
	// a healthy self-test never stands in for a per-call failure
	calls := 0
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			successHandler("ok")(w, r)
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	})

	assert.Equal(t, consult.Success, svc.SelfTest(context.Background()).Kind)
	assert.Equal(t, consult.RateLimited, svc.Complete(context.Background(), "s", "u").Kind)
	assert.Equal(t, consult.Success, svc.SelfTest(context.Background()).Kind, "cached probe is unchanged")
}
