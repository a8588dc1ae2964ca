package middleware

import (
	"net/http"
	"strings"

	"travelshare/app/apperrors"
	"travelshare/app/auth"
	"travelshare/app/logging"
	"travelshare/app/response"
)

// Verifier checks a bearer token. *auth.Manager implements it.
type Verifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the claims in the request context. It must run before the
// Require* middleware.
func Authenticate(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				logging.Ctx(r.Context()).Debug().Msg("No token provided")
				response.Error(w, r, apperrors.Unauthorized("No token provided"))
				return
			}

			claims, err := v.Verify(token)
			if err != nil {
				logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to authenticate token")
				response.Error(w, r, apperrors.Unauthorized("Failed to authenticate token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// requireClaims builds a middleware that runs check against the authenticated user.
func requireClaims(check func(*auth.User) error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, r, apperrors.Unauthorized("No token provided"))
				return
			}
			if err := check(&claims.User); err != nil {
				logging.Ctx(r.Context()).Debug().Str("user", claims.User.ID).Msg(err.Error())
				response.Error(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePlan lets through users whose plan satisfies plan.
func RequirePlan(plan auth.Plan) func(http.Handler) http.Handler {
	return requireClaims(func(u *auth.User) error { return auth.CheckPlan(u, plan) })
}

// RequireRole lets through users holding a role that satisfies role.
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return requireClaims(func(u *auth.User) error { return auth.CheckRole(u, role) })
}

// RequireAddon lets through users holding addon or the "all" addon.
func RequireAddon(addon string) func(http.Handler) http.Handler {
	return requireClaims(func(u *auth.User) error { return auth.CheckAddon(u, addon) })
}

// Chain composes middleware so the first argument runs first.
func Chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
