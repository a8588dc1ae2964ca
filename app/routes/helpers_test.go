package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"travelshare/app/auth"
	"travelshare/app/repositories"
	"travelshare/app/services"
)

const testSecret = "routes-test-secret-0123"

type testServer struct {
	handler http.Handler
	store   *repositories.Store
	tokens  *auth.Manager
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field string `json:"field"`
		Msg   string `json:"msg"`
	} `json:"errors"`
}

func setupTestServer(t *testing.T, withAuth bool, mode services.ReplaceMode) *testServer {
	t.Helper()
	store, err := repositories.OpenStore(repositories.StoreOptions{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	publicationRepo, commentRepo, reactionRepo := store.Repositories()
	deps := Dependencies{
		Publications: services.NewPublicationService(publicationRepo),
		Comments:     services.NewCommentService(commentRepo),
		Reactions:    services.NewReactionService(reactionRepo, nil, mode),
		Health:       store.Ping,
	}

	srv := &testServer{store: store}
	if withAuth {
		srv.tokens, err = auth.NewManager(testSecret, time.Hour)
		require.NoError(t, err)
		deps.Verifier = srv.tokens
	}
	srv.handler = SetupRoutes(deps)
	return srv
}

func (s *testServer) token(t *testing.T, user auth.User) string {
	t.Helper()
	token, err := s.tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) count(t *testing.T, path string) int {
	t.Helper()
	rec, env := s.do(t, "GET", path, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &items))
	return len(items)
}

func dataID(t *testing.T, env envelope) string {
	t.Helper()
	var v struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &v))
	require.NotEmpty(t, v.ID)
	return v.ID
}
