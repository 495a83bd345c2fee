package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

// DuplicateFieldError reports which unique field collided during the
// signup pre-check. It unwraps to ErrUserAlreadyExists so callers that
// only care about the conflict class keep working.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string { return fmt.Sprintf("%s already in use", e.Field) }

func (e *DuplicateFieldError) Unwrap() error { return ErrUserAlreadyExists }

// MissingFieldsError enumerates the required signup fields absent from
// the request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// UserRepository abstracts the credential store from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user *User) (primitive.ObjectID, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	// PushLinks appends created record ids onto the user document.
	PushLinks(ctx context.Context, id primitive.ObjectID, goals, incomes, transactions []primitive.ObjectID) error
}

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user *User) (string, error)
}
