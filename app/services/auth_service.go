package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/hafizianr/go-catalog-admin/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials carries one generic message for both unknown
	// usernames and wrong passwords, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("user already exists")
	ErrWeakPassword       = errors.New("username required and password must be at least 6 characters")
	ErrDemoNotLocal       = errors.New("demo user creation is allowed only on local/dev hosts")
)

const (
	MsgLoginOK              = "Login successful"
	MsgLoginMigrated        = "Login successful (password migrated)"
	MsgLoginMigrationFailed = "Login successful (password migration failed)"
)

var localHostPattern = regexp.MustCompile(`localhost|127\.0\.0\.1|::1`)

// LoginResult reports an authenticated user plus the message to surface.
// The message distinguishes a failed hash migration from a clean login, but
// both are successes.
type LoginResult struct {
	User    *models.User
	Message string
}

type AuthService struct {
	userRepo repositories.UserRepositoryImpl
}

func NewAuthService(userRepo repositories.UserRepositoryImpl) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func looksHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// Attempt verifies a username/password pair. Records still carrying a legacy
// plaintext password are upgraded to a bcrypt hash on the first successful
// login; a failed upgrade write does not block the login itself.
func (s *AuthService) Attempt(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if looksHashed(user.Password) {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return &LoginResult{User: user, Message: MsgLoginOK}, nil
	}

	if password != user.Password {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Attempt: failed to hash migrated password for user %d: %v", user.ID, err)
		return &LoginResult{User: user, Message: MsgLoginMigrationFailed}, nil
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		log.Printf("Attempt: failed to persist migrated password for user %d: %v", user.ID, err)
		return &LoginResult{User: user, Message: MsgLoginMigrationFailed}, nil
	}

	return &LoginResult{User: user, Message: MsgLoginMigrated}, nil
}

// CreateDemoUser creates a user for local development. The serving host must
// look local, and the password is stored pre-hashed: demo users never pass
// through the legacy plaintext state.
func (s *AuthService) CreateDemoUser(ctx context.Context, host, username, password string) (*models.User, error) {
	if !localHostPattern.MatchString(host) {
		return nil, ErrDemoNotLocal
	}

	username = strings.TrimSpace(username)
	if username == "" || len(password) < 6 {
		return nil, ErrWeakPassword
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
