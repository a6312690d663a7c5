// Package git reads metadata from the local repository. It is the fallback
// source for the resolver's inputs when no CI provider is detected.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	giturl "github.com/kubescape/go-git-url"

	errUtils "github.com/cargoship-ci/cargoship/errors"
	"github.com/cargoship-ci/cargoship/pkg/perf"
)

// RepoInfo describes the local repository.
type RepoInfo struct {
	RepoURL   string
	RepoOwner string
	RepoName  string
	RepoHost  string
	HeadSHA   string
}

// GetLocalRepo opens the repository containing the working directory.
func GetLocalRepo() (*git.Repository, error) {
	defer perf.Track(nil, "git.GetLocalRepo")()

	localRepo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUtils.ErrNoGitRepo, err)
	}

	return localRepo, nil
}

// GetRepoInfo extracts owner/name from the first remote URL and the HEAD
// commit SHA.
func GetRepoInfo(localRepo *git.Repository) (RepoInfo, error) {
	defer perf.Track(nil, "git.GetRepoInfo")()

	repoConfig, err := localRepo.Config()
	if err != nil {
		return RepoInfo{}, err
	}

	remoteURL := firstRemoteURL(repoConfig.Remotes)
	if remoteURL == "" {
		return RepoInfo{}, errUtils.ErrNoGitRemote
	}

	gitURL, err := giturl.NewGitURL(remoteURL)
	if err != nil {
		return RepoInfo{}, err
	}

	info := RepoInfo{
		RepoURL:   remoteURL,
		RepoOwner: gitURL.GetOwnerName(),
		RepoName:  gitURL.GetRepoName(),
		RepoHost:  gitURL.GetHostName(),
	}

	if head, err := localRepo.Head(); err == nil {
		info.HeadSHA = head.Hash().String()
	}

	return info, nil
}

// Repository returns the "owner/name" identifier.
func (i RepoInfo) Repository() string {
	if i.RepoOwner == "" || i.RepoName == "" {
		return ""
	}
	return i.RepoOwner + "/" + i.RepoName
}

// firstRemoteURL returns the first URL of the "origin" remote if present,
// otherwise the first URL of any remote.
func firstRemoteURL(remotes map[string]*gitconfig.RemoteConfig) string {
	if origin, ok := remotes["origin"]; ok && len(origin.URLs) > 0 {
		return origin.URLs[0]
	}
	for _, remote := range remotes {
		if len(remote.URLs) > 0 {
			return remote.URLs[0]
		}
	}
	return ""
}
