package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"
	"go-devconnect-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type githubUsecase struct {
	client   *http.Client
	cache    *redis.Client // nil when Redis is not configured
	token    string
	cacheTTL time.Duration
}

func NewGithubUsecase(client *http.Client, cache *redis.Client, githubToken string, cacheTTL time.Duration) domain.GithubUsecase {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &githubUsecase{
		client:   client,
		cache:    cache,
		token:    githubToken,
		cacheTTL: cacheTTL,
	}
}

// ListRepos proxies the GitHub repo listing for a username: five newest
// repositories. Responses are cached in Redis to stay under the unauthenticated
// GitHub rate limit. Any upstream failure is reported as a generic 404.
func (u *githubUsecase) ListRepos(ctx context.Context, username string) ([]domain.GithubRepo, error) {
	cacheKey := "github:repos:" + username

	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var repos []domain.GithubRepo
			if err := json.Unmarshal(cached, &repos); err == nil {
				return repos, nil
			}
		}
	}

	url := fmt.Sprintf("https://api.github.com/users/%s/repos?per_page=5&sort=created:asc", username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		logger.Log.Warn("GitHub request failed", "username", username, "error", err)
		return nil, apperror.NotFound("No Github profile found")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NotFound("No Github profile found")
	}

	var repos []domain.GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, apperror.NotFound("No Github profile found")
	}

	if u.cache != nil {
		if payload, err := json.Marshal(repos); err == nil {
			if err := u.cache.Set(ctx, cacheKey, payload, u.cacheTTL).Err(); err != nil {
				logger.Log.Warn("GitHub cache write failed", "error", err)
			}
		}
	}

	return repos, nil
}
