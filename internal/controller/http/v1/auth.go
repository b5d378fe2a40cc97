package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/kurochkinivan/inspection_data/internal/auth"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type Authorizer interface {
	Authorize(token string, allowed ...domain.Role) auth.Result
}

func Authorize(log *slog.Logger, authorizer Authorizer, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := authorizer.Authorize(bearerToken(r), roles...)

			switch res.Decision {
			case auth.Allowed:
				next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), res.Claims)))

			case auth.Forbidden:
				log.WarnContext(r.Context(), "request forbidden",
					slog.String("path", r.URL.Path),
					slog.Any("err", res.Err),
				)
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)

			default:
				log.DebugContext(r.Context(), "request unauthenticated",
					slog.String("path", r.URL.Path),
					slog.Any("err", res.Err),
				)
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
