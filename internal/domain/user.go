package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for staff account operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Staff roles. Admins and managers may mutate any tutor's calendar; tutors
// get read access plus availability changes for their own calendar only.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleTutor   = "tutor"
)

// StaffUser is a dashboard account. TutorID links a tutor-role account to its
// calendar in the bookings service; it is empty for admins and managers.
// swagger:model StaffUser
type StaffUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	TutorID      string    `json:"tutor_id,omitempty"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID  string
	Email   string
	Role    string
	TutorID string
}

// TokenIssuer issues bearer tokens for an authenticated staff user.
type TokenIssuer interface {
	Issue(user *StaffUser, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// StaffUserRepository defines the interface for staff account storage.
type StaffUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*StaffUser, error)
	GetByID(ctx context.Context, id string) (*StaffUser, error)
}

// AuthService authenticates dashboard users and resolves their identity.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *StaffUser, err error)
	GetByID(ctx context.Context, id string) (*StaffUser, error)
}
