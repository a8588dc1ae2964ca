package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshare/app/auth"
)

func newManager(t *testing.T) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager("middleware-test-secret", time.Hour)
	require.NoError(t, err)
	return m
}

func issue(t *testing.T, m *auth.Manager, user auth.User) string {
	t.Helper()
	token, err := m.Issue(user)
	require.NoError(t, err)
	return "Bearer " + token
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-User", auth.UserID(r.Context()))
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/publications", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthenticate(t *testing.T) {
	m := newManager(t)
	h := Authenticate(m)(okHandler)

	t.Run("missing header", func(t *testing.T) {
		rec := serve(h, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "No token provided", message(t, rec))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve(h, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad signature", func(t *testing.T) {
		other, err := auth.NewManager("a-completely-different-secret", time.Hour)
		require.NoError(t, err)
		rec := serve(h, issue(t, other, auth.User{ID: "U1"}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Failed to authenticate token", message(t, rec))
	})

	t.Run("valid token", func(t *testing.T) {
		rec := serve(h, issue(t, m, auth.User{ID: "U1"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "U1", rec.Header().Get("X-User"))
	})
}

func TestRequireWithoutAuthenticate(t *testing.T) {
	rec := serve(RequirePlan(auth.PlanBasic)(okHandler), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccessChain(t *testing.T) {
	m := newManager(t)

	tests := []struct {
		name    string
		chain   func(http.Handler) http.Handler
		user    auth.User
		status  int
		message string
	}{
		{
			name:   "basic user on basic route",
			chain:  Chain(Authenticate(m), RequirePlan(auth.PlanBasic), RequireRole(auth.RoleUser)),
			user:   auth.User{ID: "U1", Plan: "basic", Roles: []string{"user"}},
			status: http.StatusOK,
		},
		{
			name:    "basic user on pro route",
			chain:   Chain(Authenticate(m), RequirePlan(auth.PlanPro)),
			user:    auth.User{ID: "U1", Plan: "basic"},
			status:  http.StatusForbidden,
			message: "Insufficient plan: required one of pro, but got basic",
		},
		{
			name:    "no plan claim",
			chain:   Chain(Authenticate(m), RequirePlan(auth.PlanBasic)),
			user:    auth.User{ID: "U1"},
			status:  http.StatusForbidden,
			message: "No plan provided",
		},
		{
			name:    "user on admin route",
			chain:   Chain(Authenticate(m), RequireRole(auth.RoleAdmin)),
			user:    auth.User{ID: "U1", Roles: []string{"user"}},
			status:  http.StatusForbidden,
			message: "Insufficient role: required one of admin, but got user",
		},
		{
			name:   "admin on user route",
			chain:  Chain(Authenticate(m), RequireRole(auth.RoleUser)),
			user:   auth.User{ID: "A1", Roles: []string{"admin"}},
			status: http.StatusOK,
		},
		{
			name:   "all addon",
			chain:  Chain(Authenticate(m), RequireAddon("maps")),
			user:   auth.User{ID: "U1", Addons: []string{"all"}},
			status: http.StatusOK,
		},
		{
			name:    "missing addon",
			chain:   Chain(Authenticate(m), RequireAddon("maps")),
			user:    auth.User{ID: "U1", Addons: []string{"chat"}},
			status:  http.StatusForbidden,
			message: "Missing required addon: maps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.chain(okHandler), issue(t, m, tt.user))
			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, message(t, rec))
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	serve(Chain(mark("first"), mark("second"), mark("third"))(okHandler), "")
	assert.Equal(t, []string{"first", "second", "third"}, order)
}
