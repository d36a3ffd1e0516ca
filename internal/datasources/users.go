package datasources

import (
	"context"
	"errors"

	"github.com/foryou-news/foryou-feed/internal/domain"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	UserCreator
	UserAuthenticator
	UserGetter
}

type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User, password string) (domain.User, error)
}

type UserAuthenticator interface {
	AuthenticateUser(ctx context.Context, email, password string) (domain.User, error)
}

type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}
