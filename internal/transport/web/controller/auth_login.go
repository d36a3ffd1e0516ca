package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
	"github.com/foryou-news/foryou-feed/internal/transport/web/tokens"
)

type AuthLogin struct {
	Users  datasources.UserAuthenticator
	Signer *tokens.Signer
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c AuthLogin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req AuthLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to parse login request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.Users.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, datasources.ErrInvalidCredentials) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		logger.ErrorContext(ctx, "unable to authenticate user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeAuthResponse(w, r, c.Signer, user)
}
