package middleware

import (
	"context"
	"net/http"

	adminauth "github.com/maxwellflitton/adminauth"
	"github.com/maxwellflitton/adminauth/roles"
)

// TokenHeader is the request header carrying the raw token.
const TokenHeader = "token"

// Fingerprint assigned when a request carries no User-Agent, matching the
// value tokens are issued with for agentless clients.
const DefaultUserAgent = "unknown"

type authResultContextKey struct{}

// AuthFromContext returns the identity Guard stored for the request.
func AuthFromContext(ctx context.Context) (*adminauth.AuthResult, bool) {
	res, ok := ctx.Value(authResultContextKey{}).(*adminauth.AuthResult)
	return res, ok
}

// Guard returns middleware enforcing the role requirement on every request.
func Guard(engine *adminauth.Engine, requirement roles.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			values, present := r.Header[http.CanonicalHeaderKey(TokenHeader)]
			if !present || len(values) == 0 {
				http.Error(w, "token not in header under key 'token'", http.StatusUnauthorized)
				return
			}
			raw := values[0]
			if raw == "" {
				http.Error(w, "token not a valid string", http.StatusUnauthorized)
				return
			}

			userAgent := r.Header.Get("User-Agent")
			if userAgent == "" {
				userAgent = DefaultUserAgent
			}

			res, err := engine.Validate(r.Context(), raw, userAgent, requirement)
			if err != nil {
				http.Error(w, err.Error(), adminauth.StatusOf(err).HTTPStatus())
				return
			}

			ctx := context.WithValue(r.Context(), authResultContextKey{}, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin guards routes reserved for the top tier.
func RequireSuperAdmin(engine *adminauth.Engine) func(http.Handler) http.Handler {
	return Guard(engine, roles.Minimum(roles.SuperAdmin))
}

// RequireAdmin guards routes for admins and above.
func RequireAdmin(engine *adminauth.Engine) func(http.Handler) http.Handler {
	return Guard(engine, roles.Minimum(roles.Admin))
}

// RequireWorker guards routes any authenticated tier may call.
func RequireWorker(engine *adminauth.Engine) func(http.Handler) http.Handler {
	return Guard(engine, roles.Minimum(roles.Worker))
}
