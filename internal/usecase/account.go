package usecase

import (
	"time"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/gravatar"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewUserAccount builds a User ready for persistence: fresh id, gravatar
// avatar and bcrypt password hash. Shared by REST registration and the
// GraphQL addUser mutation.
func NewUserAccount(name, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       gravatar.URL(email),
		CreatedAt:    time.Now(),
	}, nil
}
