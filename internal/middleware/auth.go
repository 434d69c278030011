package middleware

import (
	"context"
	"net/http"

	"github.com/stevans93/rent-and-co-sub001/internal/auth"
)

type ctxKey int

const claimsKey ctxKey = iota

// WithAuth кладёт в контекст claims из валидного Bearer-токена. Без токена запрос идёт анонимно.
func WithAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := auth.ExtractToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				sugar.Debugw("auth: token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// AccountCheck сообщает, существует ли пользователь и активен ли он.
type AccountCheck func(ctx context.Context, userID string) (found, active bool, err error)

// WithAccountCheck: токен удалённого пользователя игнорируется, деактивированного отклоняется.
func WithAccountCheck(check AccountCheck) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := ClaimsFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			found, active, err := check(r.Context(), c.ID)
			switch {
			case err != nil:
				sugar.Errorw("auth: account check failed", "user_id", c.ID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
			case !found:
				sugar.Debugw("auth: token of removed user", "user_id", c.ID)
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), nil)))
			case !active:
				writeError(w, http.StatusForbidden, "account is deactivated")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// WithClaims возвращает контекст с claims.
func WithClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromContext достаёт claims, положенные WithAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok && c != nil
}

// RequireAuth пропускает только аутентифицированные запросы.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только администраторов.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !c.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
