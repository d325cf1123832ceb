package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLoanLengthDays is the loan duration assigned to new users when no
// other default is configured.
const DefaultLoanLengthDays = 21

// User represents a library member: the account used for authentication and
// the owner of lendable items.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal numeric identifier assigned by the store.
	// It is used only for foreign-key linkage and is never serialized.
	UserID int64 `json:"-"`

	// GUID is the externally safe identifier of the user. It is generated
	// once, before the record is persisted, and never changes.
	GUID string `json:"guid"`

	// Email is the login key. It is unique across all users and is stored in
	// its normalized form (see NormalizeEmail).
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-"`

	// DisplayName is a human-readable label and is not unique.
	DisplayName string `json:"display_name"`

	// DefaultLoanLengthDays is the loan duration used for items that do not
	// carry their own override.
	DefaultLoanLengthDays int `json:"default_loan_length_days"`

	// IsActive is reserved for a future soft-disable feature. Nothing reads it.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser constructs a User ready to be persisted. The GUID is assigned here
// so construction and identity assignment happen in one step.
func NewUser(email, passwordHash, displayName string, defaultLoanLengthDays int, now time.Time) User {
	if defaultLoanLengthDays < 1 {
		defaultLoanLengthDays = DefaultLoanLengthDays
	}

	return User{
		GUID:                  uuid.NewString(),
		Email:                 NormalizeEmail(email),
		PasswordHash:          passwordHash,
		DisplayName:           strings.TrimSpace(displayName),
		DefaultLoanLengthDays: defaultLoanLengthDays,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are compared case-insensitively, so every lookup and insert goes
// through this function.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest carries the sign-up form.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,notblank,email,max=120"`
	Password    string `json:"password" validate:"required,notblank,max=72"`
	DisplayName string `json:"display_name" validate:"required,notblank,max=80"`
}

// Credentials carries the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoanLengthUpdate changes a user's default loan duration.
type LoanLengthUpdate struct {
	DefaultLoanLengthDays int `json:"default_loan_length_days" validate:"min=1,max=3650"`
}
