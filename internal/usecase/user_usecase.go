package usecase

import (
	"context"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"
	"go-devconnect-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	repo     domain.UserRepository
	tokens   *token.Manager
	validate *validator.Validate
}

func NewUserUsecase(repo domain.UserRepository, tokens *token.Manager, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		repo:     repo,
		tokens:   tokens,
		validate: validate,
	}
}

func (u *userUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	var msgs []string
	if name == "" {
		msgs = append(msgs, "Name is required")
	}
	if email == "" {
		msgs = append(msgs, "Please include a valid email")
	}
	if len(password) < 6 {
		msgs = append(msgs, "Please enter a password with 6 or more characters")
	}
	if len(msgs) > 0 {
		return "", apperror.Validation(msgs...)
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Validation("User already exists")
	}

	user, err := NewUserAccount(name, email, password)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if err := u.validate.Struct(user); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	// The unique email constraint closes the check-then-create window: a
	// concurrent duplicate registration surfaces here as a validation error.
	if err := u.repo.Create(ctx, user); err != nil {
		return "", err
	}

	return u.tokens.Issue(user.ID)
}

func (u *userUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperror.Validation("Please include a valid email", "Password is required")
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.Validation("Invalid Credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.Validation("Invalid Credentials")
	}

	return u.tokens.Issue(user.ID)
}

func (u *userUsecase) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.GetUser(ctx, userID)
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.BadRequest("User not found")
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.repo.List(ctx)
}
