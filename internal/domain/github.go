package domain

import "context"

// GithubRepo is the subset of the GitHub repository listing the API exposes.
type GithubRepo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
}

type GithubUsecase interface {
	ListRepos(ctx context.Context, username string) ([]GithubRepo, error)
}
