package source

import (
	"regexp"
	"strings"
)

var (
	gistPattern   = regexp.MustCompile(`^https://gist\.github\.com/[^/]+/([^/?#]+)(?:/([^/?#]+))?/?(?:#.*)?$`)
	gitPattern    = regexp.MustCompile(`^(?:https|git)://[^/]+/[^?#]*\.git(?:[?#].*)?$`)
	githubPattern = regexp.MustCompile(`^(https://github\.com/[^/]+/[^/]+)(?:/(blob|tree)/([^/]+)(?:/(.*))?|/)?$`)
	remotePattern = regexp.MustCompile(`^https?://`)
)

// gistAddress is a parsed gist page URL.
type gistAddress struct {
	ID       string
	Revision string
}

func parseGistAddress(address string) (gistAddress, bool) {
	m := gistPattern.FindStringSubmatch(address)
	if m == nil {
		return gistAddress{}, false
	}
	// The archive download form shares the shape of a revision URL.
	if m[2] == "archive" || strings.HasSuffix(m[1], ".git") {
		return gistAddress{}, false
	}
	return gistAddress{ID: m[1], Revision: m[2]}, true
}

// githubAddress is a parsed repository browser URL.
type githubAddress struct {
	BaseURL string
	Ref     string
	Path    string
}

func parseGitHubAddress(address string) (githubAddress, bool) {
	m := githubPattern.FindStringSubmatch(address)
	if m == nil {
		return githubAddress{}, false
	}
	return githubAddress{BaseURL: m[1], Ref: m[3], Path: m[4]}, true
}

// CloneURL is the git remote for the repository.
func (a githubAddress) CloneURL() string {
	return strings.TrimSuffix(a.BaseURL, ".git") + ".git"
}
