package usecase

import (
	"context"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

func ownerFromContext(ctx context.Context) (string, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return ctxUserID, nil
}

func (u *profileUsecase) GetMyProfile(ctx context.Context) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return u.getByOwner(ctx, userID)
}

func (u *profileUsecase) CreateOrUpdate(ctx context.Context, input *domain.ProfileInput) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Required-field checks are reported as field-level validation failures,
	// matching the REST error contract.
	var msgs []string
	if input.Status == "" {
		msgs = append(msgs, "Status is required")
	}
	if input.Skills == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		return nil, apperror.Validation(msgs...)
	}
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	fields := BuildProfileFields(userID, input)

	profile, err := u.repo.Upsert(ctx, fields)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) List(ctx context.Context) ([]domain.Profile, error) {
	return u.repo.List(ctx)
}

func (u *profileUsecase) GetByOwner(ctx context.Context, userID string) (*domain.Profile, error) {
	return u.getByOwner(ctx, userID)
}

func (u *profileUsecase) getByOwner(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := u.repo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// Reported as 400, matching the historical API contract.
		return nil, apperror.BadRequest("There is no profile for this user")
	}
	return profile, nil
}

// DeleteAccount removes the caller's profile and then the caller's user
// record. Always the authenticated user: clients cannot delete other
// accounts.
func (u *profileUsecase) DeleteAccount(ctx context.Context) error {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.Delete(ctx, userID)
}

func (u *profileUsecase) AddExperience(ctx context.Context, input *domain.ExperienceInput) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var msgs []string
	if input.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if input.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	if input.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, apperror.Validation(msgs...)
	}

	profile, err := u.getByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	profile.Experience = PrependExperience(profile.Experience, entry)

	// Read-modify-write: not atomic with the fetch above. A concurrent
	// editor of the same profile can race, as in the original system.
	if err := u.repo.ReplaceExperience(ctx, userID, profile.Experience); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) RemoveExperience(ctx context.Context, entryID string) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.getByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Experience = RemoveExperience(profile.Experience, entryID)
	if err := u.repo.ReplaceExperience(ctx, userID, profile.Experience); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) AddEducation(ctx context.Context, input *domain.EducationInput) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var msgs []string
	if input.School == "" {
		msgs = append(msgs, "School is required")
	}
	if input.Degree == "" {
		msgs = append(msgs, "Degree is required")
	}
	if input.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, apperror.Validation(msgs...)
	}

	profile, err := u.getByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.Education{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	profile.Education = PrependEducation(profile.Education, entry)

	if err := u.repo.ReplaceEducation(ctx, userID, profile.Education); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) RemoveEducation(ctx context.Context, entryID string) (*domain.Profile, error) {
	userID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.getByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Education = RemoveEducation(profile.Education, entryID)
	if err := u.repo.ReplaceEducation(ctx, userID, profile.Education); err != nil {
		return nil, err
	}
	return profile, nil
}
