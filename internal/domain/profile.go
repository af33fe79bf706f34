package domain

import (
	"context"
	"time"
)

type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
}

// SocialLinks holds the optional social profile URLs. Absent links are
// omitted from JSON rather than serialized as empty strings.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy,omitempty"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// ProfileFields is the normalized output of the field builder: only the
// fields present in the input are non-nil, so the repository upsert can
// leave absent columns untouched.
type ProfileFields struct {
	UserID         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         *SocialLinks
}

// ProfileInput carries the raw partial body of a create-or-update request.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
}

type ExperienceInput struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

type ProfileRepository interface {
	GetByOwner(ctx context.Context, userID string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Upsert(ctx context.Context, fields *ProfileFields) (*Profile, error)
	ReplaceExperience(ctx context.Context, userID string, entries []Experience) error
	ReplaceEducation(ctx context.Context, userID string, entries []Education) error
	DeleteByOwner(ctx context.Context, userID string) error
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context) (*Profile, error)
	CreateOrUpdate(ctx context.Context, input *ProfileInput) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	GetByOwner(ctx context.Context, userID string) (*Profile, error)
	DeleteAccount(ctx context.Context) error
	AddExperience(ctx context.Context, input *ExperienceInput) (*Profile, error)
	RemoveExperience(ctx context.Context, entryID string) (*Profile, error)
	AddEducation(ctx context.Context, input *EducationInput) (*Profile, error)
	RemoveEducation(ctx context.Context, entryID string) (*Profile, error)
}
