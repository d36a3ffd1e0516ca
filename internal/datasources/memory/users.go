package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

var _ datasources.UserRepository = (*UserStore)(nil)

// UserStore holds demo users in process memory. Everything here is lost on
// restart; durable accounts are out of scope for this service.
type UserStore struct {
	mu        sync.RWMutex
	byID      map[string]domain.User
	idByEmail map[string]string
	passwords map[string][]byte
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:      make(map[string]domain.User),
		idByEmail: make(map[string]string),
		passwords: make(map[string][]byte),
	}
}

func (s *UserStore) CreateUser(
	_ context.Context,
	user domain.User,
	password string,
) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(user.Email))
	if email == "" {
		return domain.User{}, fmt.Errorf("user email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.idByEmail[email]; exists {
		return domain.User{}, datasources.ErrEmailTaken
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = email
	if user.Preferences == nil {
		user.Preferences = []domain.Topic{}
	}

	s.byID[user.ID] = user
	s.idByEmail[email] = user.ID
	s.passwords[user.ID] = hash

	return user, nil
}

func (s *UserStore) AuthenticateUser(
	_ context.Context,
	email, password string,
) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, datasources.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwords[id], []byte(password)); err != nil {
		return domain.User{}, datasources.ErrInvalidCredentials
	}

	return s.byID[id], nil
}

func (s *UserStore) GetUser(_ context.Context, userID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[userID]
	if !ok {
		return domain.User{}, datasources.ErrUserNotFound
	}

	return user, nil
}
