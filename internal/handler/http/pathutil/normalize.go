package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/users/\d+$`), template: "/users/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/123) to template format (e.g., /articles/:id).
// Static paths remain unchanged.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/articles/123?page=1")   // "/articles/:id"
//	NormalizePath("/articles/123/")         // "/articles/:id"
//	NormalizePath("/health")                // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Static paths like /health or /auth/login pass through unchanged
	return path
}
