package app

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"kosovai-backend/internal/config"
	"kosovai-backend/internal/model"
	"kosovai-backend/internal/pkg/hashutil"
	"kosovai-backend/internal/pkg/jwtutil"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredential is the single answer for unknown username
	// and wrong password alike, so the login endpoint cannot be used
	// to enumerate accounts.
	ErrInvalidCredential = errors.New("invalid username or password")
)

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
}

type UserLookupCache interface {
	GetUser(ctx context.Context, username string) (*model.User, bool, error)
	SetUser(ctx context.Context, user *model.User) error
}

type LoginEventPublisher interface {
	Publish(ctx context.Context, event model.LoginEvent) error
}

type AuthService struct {
	users         UserStore
	cache         UserLookupCache
	events        LoginEventPublisher
	jwtSecret     string
	jwtExpiration time.Duration
}

type LoginInput struct {
	Username   string
	Password   string
	RemoteAddr string
}

type AuthResult struct {
	Token string
	User  *model.User
}

// NewAuthService wires the login flow. cache and events may be nil;
// both are best-effort collaborators.
func NewAuthService(
	users UserStore,
	cache UserLookupCache,
	events LoginEventPublisher,
	jwtSecret string,
	jwtExpiration time.Duration,
) *AuthService {
	return &AuthService{
		users:         users,
		cache:         cache,
		events:        events,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	password := input.Password
	if username == "" || password == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !hashutil.Verify(password, user.PasswordHash) {
		s.recordLogin(ctx, username, model.LoginOutcomeDenied, input.RemoteAddr)
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.Username)
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, username, model.LoginOutcomeGranted, input.RemoteAddr)
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) TokenExpiration() time.Duration {
	return s.jwtExpiration
}

// VerifyToken returns the subject username of a valid session token.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return jwtutil.ParseToken(s.jwtSecret, token)
}

// Seed provisions the configured accounts before the server takes
// traffic. Already-present usernames are skipped, so re-running it on
// restart is harmless.
func (s *AuthService) Seed(ctx context.Context, seedUsers []config.SeedUser) error {
	for _, seed := range seedUsers {
		username := strings.TrimSpace(seed.Username)
		if username == "" || seed.Password == "" {
			return ErrInvalidInput
		}

		existing, err := s.users.GetByUsername(username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := hashutil.Hash(seed.Password)
		if err != nil {
			return err
		}
		if err := s.users.Create(&model.User{Username: username, PasswordHash: hash}); err != nil {
			return err
		}
		log.Printf("seeded user %q", username)
	}
	return nil
}

func (s *AuthService) lookupUser(ctx context.Context, username string) (*model.User, error) {
	if s.cache != nil {
		if user, hit, err := s.cache.GetUser(ctx, username); err == nil && hit {
			return user, nil
		} else if err != nil {
			log.Printf("user cache read failed: %v", err)
		}
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil && s.cache != nil {
		if err := s.cache.SetUser(ctx, user); err != nil {
			log.Printf("user cache write failed: %v", err)
		}
	}
	return user, nil
}

// recordLogin is fire-and-forget: the audit trail never changes a
// login outcome.
func (s *AuthService) recordLogin(ctx context.Context, username, outcome, remoteAddr string) {
	if s.events == nil {
		return
	}
	event := model.LoginEvent{
		Username:   username,
		Outcome:    outcome,
		RemoteAddr: remoteAddr,
		CreatedAt:  time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		log.Printf("publish login event failed: %v", err)
	}
}
