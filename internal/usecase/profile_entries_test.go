package usecase_test

import (
	"testing"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func experienceSeq(ids ...string) []domain.Experience {
	seq := make([]domain.Experience, 0, len(ids))
	for _, id := range ids {
		seq = append(seq, domain.Experience{ID: id, Title: "Title " + id})
	}
	return seq
}

func TestPrependExperience(t *testing.T) {
	seq := experienceSeq("e1", "e2")

	out := usecase.PrependExperience(seq, domain.Experience{ID: "e3"})

	assert.Len(t, out, 3)
	assert.Equal(t, "e3", out[0].ID)
	assert.Equal(t, "e1", out[1].ID)
	assert.Equal(t, "e2", out[2].ID)
	// Original slice untouched
	assert.Len(t, seq, 2)
}

func TestPrependExperience_AssignsID(t *testing.T) {
	out := usecase.PrependExperience(nil, domain.Experience{Title: "Engineer"})

	assert.Len(t, out, 1)
	assert.NotEmpty(t, out[0].ID)
}

func TestRemoveExperience(t *testing.T) {
	seq := experienceSeq("e1", "e2", "e3")

	out := usecase.RemoveExperience(seq, "e2")

	assert.Len(t, out, 2)
	assert.Equal(t, "e1", out[0].ID)
	assert.Equal(t, "e3", out[1].ID)
}

func TestRemoveExperience_UnknownIDIsNoOp(t *testing.T) {
	seq := experienceSeq("e1", "e2", "e3")

	out := usecase.RemoveExperience(seq, "nope")

	// The historical implementation dropped the LAST element here. That was
	// a defect; removal of an unknown id must leave the sequence unchanged.
	assert.Equal(t, seq, out)
}

func TestRemoveExperience_FirstAndLast(t *testing.T) {
	seq := experienceSeq("e1", "e2", "e3")

	assert.Equal(t, []string{"e2", "e3"}, entryIDs(usecase.RemoveExperience(seq, "e1")))
	assert.Equal(t, []string{"e1", "e2"}, entryIDs(usecase.RemoveExperience(seq, "e3")))
}

func entryIDs(seq []domain.Experience) []string {
	ids := make([]string, 0, len(seq))
	for _, e := range seq {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestPrependEducation(t *testing.T) {
	seq := []domain.Education{{ID: "d1"}, {ID: "d2"}}

	out := usecase.PrependEducation(seq, domain.Education{School: "MIT"})

	assert.Len(t, out, 3)
	assert.Equal(t, "MIT", out[0].School)
	assert.NotEmpty(t, out[0].ID)
	assert.Equal(t, "d1", out[1].ID)
	assert.Equal(t, "d2", out[2].ID)
}

func TestRemoveEducation_UnknownIDIsNoOp(t *testing.T) {
	seq := []domain.Education{{ID: "d1"}, {ID: "d2"}}

	out := usecase.RemoveEducation(seq, "missing")

	assert.Equal(t, seq, out)
}

func TestRemoveEducation(t *testing.T) {
	seq := []domain.Education{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}

	out := usecase.RemoveEducation(seq, "d1")

	assert.Len(t, out, 2)
	assert.Equal(t, "d2", out[0].ID)
	assert.Equal(t, "d3", out[1].ID)
}
