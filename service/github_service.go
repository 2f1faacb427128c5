package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/langbadge/toplangs-backend/config"
	"github.com/langbadge/toplangs-backend/model"

	log "github.com/sirupsen/logrus"

	"golang.org/x/time/rate"
)

type GithubService interface {
	FetchUserRepositories(ctx context.Context, username string) ([]model.GithubRepository, error)

	HandleRequestErrors(err error) error
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// ListByUser rate limit = 60 calls per hour for non-authenticated and 5000 calls for authenticated
// one chart request consumes exactly one github request, so the local limiter
// only needs to track the core rate
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

// FetchUserRepositories loads the first page of public repositories for a user
// only one page is fetched with a fixed page size: the chart is a summary,
// not an exhaustive listing, so paginating further is not worth the rate budget
func (s githubService) FetchUserRepositories(ctx context.Context, username string) ([]model.GithubRepository, error) {
	if !s.githubRateLimiter.Allow() {
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return []model.GithubRepository{}, fmt.Errorf("RATE_LIMIT_REACHED")
	}

	log.WithFields(log.Fields{
		"username": username,
		"pageSize": s.config.Github.RepositoriesPageSize,
	}).Info("fetch first page of public repositories for user")

	repos, _, err := s.githubClient.Repositories.ListByUser(
		ctx,
		username,
		&github.RepositoryListByUserOptions{
			Sort:      "updated",
			Direction: "desc",
			ListOptions: github.ListOptions{
				Page:    1,
				PerPage: s.config.Github.RepositoriesPageSize,
			},
		},
	)

	if err != nil {
		return []model.GithubRepository{}, s.HandleRequestErrors(err)
	}

	// build output format for each repo
	// repositories with incomplete identification are skipped rather than failing
	// the whole chart, a missing name has no impact on the language tally
	repositories := make([]model.GithubRepository, 0, len(repos))

	for _, r := range repos {

		if r == nil || r.ID == nil || r.Name == nil || r.FullName == nil {
			log.WithFields(log.Fields{
				"repositoryID": r.GetID(),
			}).Debug("repository found with invalid information. skipped")

			continue
		}

		repositories = append(repositories, model.GithubRepository{
			ID:              *r.ID,
			Name:            *r.Name,
			FullName:        *r.FullName,
			StarCount:       r.GetStargazersCount(),
			PrimaryLanguage: r.Language,
		})
	}

	log.WithFields(log.Fields{
		"username":             username,
		"numberOfRepositories": len(repositories),
	}).Debug("repositories fetched for user")

	return repositories, nil
}

// HandleRequestErrors manage errors including github rate limit errors at the same location
// If error is a rate limit error, this function will update the local rate limiter to consume all available requests
// this can help us to keep the local rate limiter up to date
// other github error responses keep the literal upstream status code and text in the returned error
func (s githubService) HandleRequestErrors(err error) error {
	if _, ok := err.(*github.RateLimitError); ok {
		if !s.githubRateLimiter.AllowN(time.Now(), s.githubRateLimiter.Burst()) {
			return fmt.Errorf("RATE_LIMITER_ERROR")
		}

		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return fmt.Errorf("RATE_LIMIT_REACHED")
	}

	if errResp, ok := err.(*github.ErrorResponse); ok && errResp.Response != nil {
		statusCode := errResp.Response.StatusCode

		log.WithFields(log.Fields{
			"statusCode": statusCode,
		}).Error("github answered with a non success status")

		return fmt.Errorf("UPSTREAM_FETCH_ERROR: %d %s", statusCode, http.StatusText(statusCode))
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return fmt.Errorf("FETCH_ERROR")
}
