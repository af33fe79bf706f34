package usecase

import (
	"strings"

	"go-devconnect-backend/internal/domain"
)

// BuildProfileFields normalizes a partial profile input into the field set
// applied by the repository upsert. Only present, non-empty fields are
// included, so a field absent from the input never clears a stored value.
// Pure transformation: it performs no validation and touches no storage.
func BuildProfileFields(ownerID string, input *domain.ProfileInput) *domain.ProfileFields {
	fields := &domain.ProfileFields{UserID: ownerID}

	fields.Company = optional(input.Company)
	fields.Website = optional(input.Website)
	fields.Location = optional(input.Location)
	fields.Bio = optional(input.Bio)
	fields.Status = optional(input.Status)
	fields.GithubUsername = optional(input.GithubUsername)

	if input.Skills != "" {
		fields.Skills = ParseSkills(input.Skills)
	}

	social := domain.SocialLinks{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Instagram: input.Instagram,
		Facebook:  input.Facebook,
		Linkedin:  input.Linkedin,
	}
	if social != (domain.SocialLinks{}) {
		fields.Social = &social
	}

	return fields
}

// ParseSkills splits a comma-separated skills string, trims surrounding
// whitespace, and drops segments that are empty after trimming. Input order
// is preserved.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
