package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// User types. The type decides which dashboard and profile a user gets.
const (
	UserTypeStudent   = "STUDENT"
	UserTypeManager   = "MANAGER"
	UserTypeOrganizer = "ORGANIZER"
)

// ValidUserType reports whether t is one of the closed user type set.
func ValidUserType(t string) bool {
	switch t {
	case UserTypeStudent, UserTypeManager, UserTypeOrganizer:
		return true
	}
	return false
}

// User represents a registered user.
// swagger:model User
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	UserType         string    `json:"user_type"`
	ProfileCompleted bool      `json:"profile_completed"`
	PasswordHash     string    `json:"-"`
	PasswordSalt     string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, userType, passwordHash, passwordSalt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:        email,
		Name:         name,
		UserType:     userType,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, userType string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	SetProfileCompleted(ctx context.Context, userID string, completed bool) error
}

// AuthService defines signup and login.
type AuthService interface {
	SignUp(ctx context.Context, email, name, userType, password string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
