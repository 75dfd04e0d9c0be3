package middleware

import (
	"context"
	"net/http"
	"strings"

	"slot_game/internal/model"
	"slot_game/pkg/logger"
	"slot_game/pkg/resp"
	"slot_game/pkg/token"

	"go.uber.org/zap"
)

// AdminOnly пропускает запросы только с валидным admin JWT в Authorization: Bearer
func AdminOnly(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				logger.Warn("admin token rejected",
					zap.Error(err),
					zap.String("request_id", RequestIDFromContext(r.Context())),
				)
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminClaimsKey, claims)))
		})
	}
}

func AdminFromContext(ctx context.Context) (*model.AdminClaims, bool) {
	claims, ok := ctx.Value(adminClaimsKey).(*model.AdminClaims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(h[len(prefix):]), true
}
