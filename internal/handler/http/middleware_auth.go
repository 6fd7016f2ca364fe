package http

import (
	"context"
	"net/http"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/utils"
)

// auth guards the access-list endpoint with an operator-issued bearer token.
// The token subject is stored under [utils.SubjectCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, r, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, r, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateAndParseJWTToken(token, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("token rejected")
			utils.WriteError(w, r, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
