package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v59/github"

	errUtils "github.com/cargoship-ci/cargoship/errors"
	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/perf"
)

// GetLatestRelease returns the latest release tag for a GitHub repository.
func GetLatestRelease(owner string, repo string) (string, error) {
	defer perf.Track(nil, "github.GetLatestRelease")()

	log.Debug("Fetching latest release from GitHub API", logFieldOwner, owner, logFieldRepo, repo)

	ctx := context.Background()
	client := newGitHubClient(ctx)

	release, resp, err := client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", handleGitHubAPIError(err, resp)
	}

	if release == nil || release.TagName == nil {
		return "", nil
	}

	return *release.TagName, nil
}

// handleGitHubAPIError maps API failures to the package error taxonomy.
func handleGitHubAPIError(err error, resp *github.Response) error {
	if resp != nil && resp.StatusCode == http.StatusForbidden {
		if rateErr, ok := err.(*github.RateLimitError); ok {
			resetTime := rateErr.Rate.Reset.Time
			return fmt.Errorf("%w: resets at %s (in %s). Consider setting CARGOSHIP_GITHUB_TOKEN or GITHUB_TOKEN for higher limits",
				errUtils.ErrGitHubRateLimitExceeded,
				resetTime.Format(time.RFC3339),
				time.Until(resetTime).Round(time.Second),
			)
		}
	}
	return err
}
