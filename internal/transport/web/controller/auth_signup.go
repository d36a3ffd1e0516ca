package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
	"github.com/foryou-news/foryou-feed/internal/transport/web/tokens"
)

type AuthSignup struct {
	Users  datasources.UserCreator
	Signer *tokens.Signer
}

type AuthSignupRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Preferences []string `json:"preferences"`
}

type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c AuthSignup) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req AuthSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.ErrorContext(ctx, "unable to parse signup request", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	preferences, err := domain.ParseTopics(req.Preferences)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse signup preferences", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.Users.CreateUser(ctx, domain.User{
		Email:       req.Email,
		Name:        req.Name,
		Preferences: preferences,
	}, req.Password)
	if err != nil {
		if errors.Is(err, datasources.ErrEmailTaken) {
			w.WriteHeader(http.StatusConflict)
			return
		}
		logger.ErrorContext(ctx, "unable to create user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeAuthResponse(w, r, c.Signer, user)
}

func writeAuthResponse(
	w http.ResponseWriter,
	r *http.Request,
	signer *tokens.Signer,
	user domain.User,
) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	token, err := signer.Issue(user.ID, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "unable to issue session token", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AuthResponse{
		User:  user,
		Token: token,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write auth response", "error", err)
	}
}
