package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	echoapi "github.com/wcccd/mihistory/apps/api/echo"
	"github.com/wcccd/mihistory/core/consult"
	"github.com/wcccd/mihistory/core/course"
	"github.com/wcccd/mihistory/core/quiz"
	"github.com/wcccd/mihistory/core/specialist"
	completionsvc "github.com/wcccd/mihistory/services/completion"
	memstore "github.com/wcccd/mihistory/storage/memory"
	"github.com/wcccd/mihistory/tests"
)

// newTestServer wires a full server around a scripted completion client; no
// network is ever touched.
func newTestServer(t *testing.T, outcomes ...consult.Outcome) (*echoapi.Server, *completionsvc.ClientMock) {
	t.Helper()

	conf := testutil.NewConfig()
	conf.Debug = false // exercise the production error payloads

	logger := testutil.NewLogger()
	registry := specialist.DefaultRegistry()
	client := completionsvc.NewClientMock(outcomes...)
	validate, translator := testutil.NewValidator()

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:           conf,
		Logger:         logger,
		Sessions:       memstore.NewSessionRepository(registry.IDs(), conf.SessionTTL),
		ConsultSvc:     consult.NewService(registry, client, logger),
		QuizSvc:        quiz.DefaultBank(),
		Catalog:        course.DefaultCatalog(),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
	return server, client
}

// testClient replays the sessionid cookie across requests, like a browser.
type testClient struct {
	t      *testing.T
	server *echoapi.Server
	cookie *http.Cookie
}

func newTestClient(t *testing.T, server *echoapi.Server) *testClient {
	return &testClient{t: t, server: server}
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "sessionid" {
			c.cookie = cookie
		}
	}
	return rec
}

func (c *testClient) get(path string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, nil)
}

func (c *testClient) post(path string, body interface{}) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, body)
}

func (c *testClient) put(path string, body interface{}) *httptest.ResponseRecorder {
	return c.do(http.MethodPut, path, body)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// success returns a scripted successful completion outcome.
func success(text string) consult.Outcome {
	return consult.Outcome{Kind: consult.Success, Text: text}
}
