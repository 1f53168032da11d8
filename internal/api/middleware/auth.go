package middleware

import (
	"context"
	"net/http"

	"devfolio/internal/app/service"
	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

type contextKey string

const userCtxKey contextKey = "user"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// Authenticator resolves the session cookie to its user and stores the
// user in the request context. Requests without a valid session continue
// anonymously; gating happens in AdminOnly.
func Authenticator(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.UserFromSession(r.Context(), cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly rejects any request whose session does not belong to an admin.
// Anonymous and non-admin callers get the same 401 so the gate reveals
// nothing about roles.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || user.Role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userCtxKey).(*model.User)
	return user
}
