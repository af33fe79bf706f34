package usecase

import (
	"go-devconnect-backend/internal/domain"

	"github.com/google/uuid"
)

// Experience and education entries are kept most-recently-added-first:
// adding prepends, removal keeps the survivors in their original relative
// order. Removal of an unknown id leaves the sequence unchanged.

func PrependExperience(seq []domain.Experience, entry domain.Experience) []domain.Experience {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	out := make([]domain.Experience, 0, len(seq)+1)
	out = append(out, entry)
	return append(out, seq...)
}

func RemoveExperience(seq []domain.Experience, entryID string) []domain.Experience {
	for i, e := range seq {
		if e.ID == entryID {
			out := make([]domain.Experience, 0, len(seq)-1)
			out = append(out, seq[:i]...)
			return append(out, seq[i+1:]...)
		}
	}
	return seq
}

func PrependEducation(seq []domain.Education, entry domain.Education) []domain.Education {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	out := make([]domain.Education, 0, len(seq)+1)
	out = append(out, entry)
	return append(out, seq...)
}

func RemoveEducation(seq []domain.Education, entryID string) []domain.Education {
	for i, e := range seq {
		if e.ID == entryID {
			out := make([]domain.Education, 0, len(seq)-1)
			out = append(out, seq[:i]...)
			return append(out, seq[i+1:]...)
		}
	}
	return seq
}
