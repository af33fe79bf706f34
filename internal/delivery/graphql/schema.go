// Package graphql re-exposes the User and Profile entities over a GraphQL
// schema built from injected repositories. There is no process-wide type
// registry: NewSchema constructs everything, and resolvers are closures over
// the repositories.
package graphql

import (
	"errors"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/internal/usecase"

	"github.com/graphql-go/graphql"
)

type SchemaDeps struct {
	Users    domain.UserRepository
	Profiles domain.ProfileRepository
}

func NewSchema(deps SchemaDeps) (graphql.Schema, error) {
	socialType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Social",
		Fields: graphql.Fields{
			"youtube":   &graphql.Field{Type: graphql.String},
			"twitter":   &graphql.Field{Type: graphql.String},
			"instagram": &graphql.Field{Type: graphql.String},
			"facebook":  &graphql.Field{Type: graphql.String},
			"linkedin":  &graphql.Field{Type: graphql.String},
		},
	})

	experienceType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Experience",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.ID},
			"title":       &graphql.Field{Type: graphql.String},
			"company":     &graphql.Field{Type: graphql.String},
			"location":    &graphql.Field{Type: graphql.String},
			"from":        &graphql.Field{Type: graphql.DateTime},
			"to":          &graphql.Field{Type: graphql.DateTime},
			"current":     &graphql.Field{Type: graphql.Boolean},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	educationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Education",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.ID},
			"school":       &graphql.Field{Type: graphql.String},
			"degree":       &graphql.Field{Type: graphql.String},
			"fieldofstudy": &graphql.Field{Type: graphql.String},
			"from":         &graphql.Field{Type: graphql.DateTime},
			"to":           &graphql.Field{Type: graphql.DateTime},
			"current":      &graphql.Field{Type: graphql.Boolean},
			"description":  &graphql.Field{Type: graphql.String},
		},
	})

	var userType *graphql.Object
	var profileType *graphql.Object

	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.ID,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return sourceUser(p).ID, nil
					},
				},
				"name": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return sourceUser(p).Name, nil
					},
				},
				"email": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return sourceUser(p).Email, nil
					},
				},
				"avatar": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return sourceUser(p).Avatar, nil
					},
				},
				"date": &graphql.Field{
					Type: graphql.DateTime,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return sourceUser(p).CreatedAt, nil
					},
				},
				"profile": &graphql.Field{
					Type: profileType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						profile, err := deps.Profiles.GetByOwner(p.Context, sourceUser(p).ID)
						if err != nil || profile == nil {
							return nil, err
						}
						return *profile, nil
					},
				},
			}
		}),
	})

	profileType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":             field(graphql.ID, func(p domain.Profile) interface{} { return p.ID }),
				"company":        field(graphql.String, func(p domain.Profile) interface{} { return p.Company }),
				"website":        field(graphql.String, func(p domain.Profile) interface{} { return p.Website }),
				"location":       field(graphql.String, func(p domain.Profile) interface{} { return p.Location }),
				"bio":            field(graphql.String, func(p domain.Profile) interface{} { return p.Bio }),
				"status":         field(graphql.String, func(p domain.Profile) interface{} { return p.Status }),
				"githubusername": field(graphql.String, func(p domain.Profile) interface{} { return p.GithubUsername }),
				"skills":         field(graphql.NewList(graphql.String), func(p domain.Profile) interface{} { return p.Skills }),
				"social":         field(socialType, func(p domain.Profile) interface{} { return p.Social }),
				"experience":     field(graphql.NewList(experienceType), func(p domain.Profile) interface{} { return p.Experience }),
				"education":      field(graphql.NewList(educationType), func(p domain.Profile) interface{} { return p.Education }),
				"date":           field(graphql.DateTime, func(p domain.Profile) interface{} { return p.CreatedAt }),
				"user": &graphql.Field{
					Type: userType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						profile := p.Source.(domain.Profile)
						user, err := deps.Users.GetByID(p.Context, profile.UserID)
						if err != nil || user == nil {
							return nil, err
						}
						return *user, nil
					},
				},
			}
		}),
	})

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQueryType",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					user, err := deps.Users.GetByID(p.Context, id)
					if err != nil || user == nil {
						return nil, err
					}
					return *user, nil
				},
			},
			"profile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					profile, err := deps.Profiles.GetByID(p.Context, id)
					if err != nil || profile == nil {
						return nil, err
					}
					return *profile, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Users.List(p.Context)
				},
			},
			"profiles": &graphql.Field{
				Type: graphql.NewList(profileType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Profiles.List(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
					"password": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					email, _ := p.Args["email"].(string)
					password, _ := p.Args["password"].(string)
					if name == "" || email == "" || password == "" {
						return nil, errors.New("name, email and password are required")
					}

					user, err := usecase.NewUserAccount(name, email, password)
					if err != nil {
						return nil, err
					}
					if err := deps.Users.Create(p.Context, user); err != nil {
						return nil, err
					}
					return *user, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    rootQuery,
		Mutation: mutation,
	})
}

func sourceUser(p graphql.ResolveParams) domain.User {
	return p.Source.(domain.User)
}

func field(t graphql.Output, get func(domain.Profile) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: t,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return get(p.Source.(domain.Profile)), nil
		},
	}
}
