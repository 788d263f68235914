package manifest

import "strings"

// HostingDomains lists repository hosts whose URLs carry "/<user>/<repo>".
type HostingDomains []string

// Recognizes reports whether url mentions one of the domains.
func (d HostingDomains) Recognizes(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range d {
		if domain != "" && strings.Contains(lower, strings.ToLower(domain)) {
			return true
		}
	}
	return false
}

// ParseURL extracts the username and repository name from a hosting URL.
//
// The URL is split on "/"; "https://github.com/octo/lib.git" gives
// ["https:", "", "github.com", "octo", "lib.git"], so segment 3 is the user
// and segment 4, minus a trailing ".git", is the repository.
func (d HostingDomains) ParseURL(url string) (username, repository string, ok bool) {
	if !d.Recognizes(url) {
		return "", "", false
	}
	parts := strings.Split(url, "/")
	if len(parts) < 5 {
		return "", "", false
	}
	return parts[3], strings.TrimSuffix(parts[4], ".git"), true
}
