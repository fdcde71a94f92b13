package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// extractBearerToken pulls the token out of an Authorization header value.
// Anything that is not exactly "Bearer <token>" is a missing token.
func extractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrMissingToken
	}
	token := header[len(common.BearerPrefix):]
	if token == "" {
		return "", common.ErrMissingToken
	}
	return token, nil
}

// requireAuth guards write endpoints. The wrapped handler runs only with
// verified claims in the request context; a missing and an invalid token are
// reported separately but both yield 401.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := s.codec.Verify(token)
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the verified claims attached by requireAuth.
func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
