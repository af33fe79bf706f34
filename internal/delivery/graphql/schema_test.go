package graphql_test

import (
	"context"
	"testing"

	gqldelivery "go-devconnect-backend/internal/delivery/graphql"
	"go-devconnect-backend/internal/domain"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories for resolver tests.

type fakeUserRepo struct {
	users map[string]domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]domain.Profile // keyed by user id
}

func (f *fakeProfileRepo) GetByOwner(ctx context.Context, userID string) (*domain.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	out := []domain.Profile{}
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, fields *domain.ProfileFields) (*domain.Profile, error) {
	p := f.profiles[fields.UserID]
	p.UserID = fields.UserID
	if fields.Status != nil {
		p.Status = *fields.Status
	}
	f.profiles[fields.UserID] = p
	return &p, nil
}

func (f *fakeProfileRepo) ReplaceExperience(ctx context.Context, userID string, entries []domain.Experience) error {
	p := f.profiles[userID]
	p.Experience = entries
	f.profiles[userID] = p
	return nil
}

func (f *fakeProfileRepo) ReplaceEducation(ctx context.Context, userID string, entries []domain.Education) error {
	p := f.profiles[userID]
	p.Education = entries
	f.profiles[userID] = p
	return nil
}

func (f *fakeProfileRepo) DeleteByOwner(ctx context.Context, userID string) error {
	delete(f.profiles, userID)
	return nil
}

func newTestSchema(t *testing.T) (graphql.Schema, *fakeUserRepo, *fakeProfileRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]domain.User{}}
	profiles := &fakeProfileRepo{profiles: map[string]domain.Profile{}}
	schema, err := gqldelivery.NewSchema(gqldelivery.SchemaDeps{Users: users, Profiles: profiles})
	require.NoError(t, err)
	return schema, users, profiles
}

func execute(schema graphql.Schema, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

func TestQueryUserWithProfileRelation(t *testing.T) {
	schema, users, profiles := newTestSchema(t)

	users.users["u1"] = domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	profiles.profiles["u1"] = domain.Profile{
		ID:     "p1",
		UserID: "u1",
		Status: "Developer",
		Skills: []string{"go", "react"},
	}

	result := execute(schema, `{ user(id: "u1") { name profile { status skills } } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Alice", user["name"])

	profile := user["profile"].(map[string]interface{})
	assert.Equal(t, "Developer", profile["status"])
	assert.Equal(t, []interface{}{"go", "react"}, profile["skills"])
}

func TestQueryProfileWithUserRelation(t *testing.T) {
	schema, users, profiles := newTestSchema(t)

	users.users["u1"] = domain.User{ID: "u1", Name: "Alice"}
	profiles.profiles["u1"] = domain.Profile{ID: "p1", UserID: "u1", Status: "Developer"}

	result := execute(schema, `{ profile(id: "p1") { status user { name } } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	profile := data["profile"].(map[string]interface{})
	assert.Equal(t, "Developer", profile["status"])
	assert.Equal(t, "Alice", profile["user"].(map[string]interface{})["name"])
}

func TestQueryLists(t *testing.T) {
	schema, users, profiles := newTestSchema(t)

	users.users["u1"] = domain.User{ID: "u1", Name: "Alice"}
	users.users["u2"] = domain.User{ID: "u2", Name: "Bob"}
	profiles.profiles["u1"] = domain.Profile{ID: "p1", UserID: "u1", Status: "Developer"}

	result := execute(schema, `{ users { id } profiles { id } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Len(t, data["users"], 2)
	assert.Len(t, data["profiles"], 1)
}

func TestAddUserMutation(t *testing.T) {
	schema, users, _ := newTestSchema(t)

	result := execute(schema, `mutation { addUser(name: "Carol", email: "carol@example.com", password: "secret1") { id name email avatar } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	added := data["addUser"].(map[string]interface{})
	assert.Equal(t, "Carol", added["name"])
	assert.Equal(t, "carol@example.com", added["email"])
	assert.Contains(t, added["avatar"], "gravatar.com/avatar/")

	stored, err := users.GetByEmail(context.Background(), "carol@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestAddUserMutationRequiresFields(t *testing.T) {
	schema, _, _ := newTestSchema(t)

	result := execute(schema, `mutation { addUser(name: "Carol") { id } }`)
	assert.NotEmpty(t, result.Errors)
}
