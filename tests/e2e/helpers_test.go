//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/mindlog-backend/internal/adapter/csv"
	authpkg "github.com/heartmarshall/mindlog-backend/internal/auth"
	"github.com/heartmarshall/mindlog-backend/internal/config"
	"github.com/heartmarshall/mindlog-backend/internal/service/journal"
	"github.com/heartmarshall/mindlog-backend/internal/service/report"
	"github.com/heartmarshall/mindlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/mindlog-backend/internal/transport/rest"
)

const testSecretPhrase = "family-journal-phrase"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a
// CSV store in a per-test temp directory.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	store := csv.NewStore(logger, filepath.Join(t.TempDir(), "journal.csv"))

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	journalSvc := journal.NewService(logger, store, nil)
	reportSvc := report.NewService(logger, journalSvc, nil)

	router := rest.NewRouter(
		rest.NewAuthHandler(jwtMgr, testSecretPhrase, logger),
		rest.NewEntriesHandler(journalSvc, logger),
		rest.NewReportHandler(reportSvc, logger),
		rest.NewHealthHandler(nil, "e2e"),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		}),
		middleware.Auth(jwtMgr),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// restRequest sends a JSON request, optionally authenticated.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody reads and decodes the JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())
	return body
}

// login exchanges a display name for an access token and user id.
func login(t *testing.T, ts *testServer, displayName string) (token, userID string) {
	t.Helper()

	resp := restRequest(t, ts, "POST", "/api/auth/login", "", map[string]any{
		"display_name": displayName,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token in response")
	userID, ok = body["user_id"].(string)
	require.True(t, ok, "expected user_id in response")
	return token, userID
}

// submitEntry posts one dated entry and requires a 201.
func submitEntry(t *testing.T, ts *testServer, token, date string, indicators map[string]int, note string) {
	t.Helper()

	payload := map[string]any{"date": date}
	for k, v := range indicators {
		payload[k] = v
	}
	if note != "" {
		payload["medication_note"] = note
	}

	resp := restRequest(t, ts, "POST", "/api/entries", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

// calmDay is a neutral all-threes entry.
func calmDay() map[string]int {
	return map[string]int{
		"mood":           3,
		"irritability":   3,
		"social_battery": 3,
		"sleep_quality":  3,
		"mental_fog":     3,
		"pressure":       3,
	}
}

// roughDay is a worst-case entry on every indicator.
func roughDay() map[string]int {
	return map[string]int{
		"mood":           1,
		"irritability":   5,
		"social_battery": 1,
		"sleep_quality":  1,
		"mental_fog":     1,
		"pressure":       5,
	}
}
