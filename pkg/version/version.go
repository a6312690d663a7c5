// Package version holds the cargoship binary version and the update check.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/cargoship-ci/cargoship/pkg/github"
	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/perf"
)

// Version is the cargoship version, set at build time via ldflags:
//
//	-ldflags "-X github.com/cargoship-ci/cargoship/pkg/version.Version=v1.2.3"
var Version = "0.0.0-dev"

// Repository hosting cargoship releases.
const (
	releaseOwner = "cargoship-ci"
	releaseRepo  = "cargoship"
)

// CheckForUpdate queries GitHub for the latest release and returns its tag
// when it is newer than the running version. Returns an empty string when
// already up to date or when either version does not parse.
func CheckForUpdate() (string, error) {
	defer perf.Track(nil, "version.CheckForUpdate")()

	latestTag, err := github.GetLatestRelease(releaseOwner, releaseRepo)
	if err != nil {
		return "", err
	}
	if latestTag == "" {
		return "", nil
	}

	if IsNewer(latestTag, Version) {
		return latestTag, nil
	}
	return "", nil
}

// IsNewer reports whether candidate is a strictly newer semantic version
// than current. Leading "v" prefixes are ignored. Unparseable versions
// compare as not newer.
func IsNewer(candidate, current string) bool {
	candidateVer, err := semver.NewVersion(strings.TrimPrefix(candidate, "v"))
	if err != nil {
		log.Debug("Failed to parse candidate version", "version", candidate, "error", err)
		return false
	}
	currentVer, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		log.Debug("Failed to parse current version", "version", current, "error", err)
		return false
	}
	return candidateVer.GreaterThan(currentVer)
}
