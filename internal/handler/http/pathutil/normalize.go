// Package pathutil parses ids out of request paths and collapses dynamic
// path segments so they can be used as metric labels and span names.
package pathutil

import (
	"regexp"
	"strings"
)

type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

const uuidSegment = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// Most specific first.
var pathPatterns = []pathPattern{
	{regexp.MustCompile(`^/api/articles/[^/]+$`), "/api/articles/:id"},
	{regexp.MustCompile(`^/admin/articles/[^/]+$`), "/admin/articles/:id"},
	{regexp.MustCompile(`^/admin/auth/[^/]+$`), "/admin/auth/:form_id"},
	{regexp.MustCompile(`^/static/.+$`), "/static/*"},
	{regexp.MustCompile(`^/swagger/.+$`), "/swagger/*"},
}

var anyUUID = regexp.MustCompile(uuidSegment)

// NormalizePath maps a concrete path onto its route template, e.g.
//
//	NormalizePath("/api/articles/9b2f1c34-5a1e-4e7a-9f3b-2c9d8e7f6a5b") // "/api/articles/:id"
//	NormalizePath("/admin/auth/login")                                  // "/admin/auth/:form_id"
//	NormalizePath("/health?verbose=1")                                  // "/health"
//
// Unknown paths keep their shape but any UUID in them is replaced by ":uuid".
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
	return anyUUID.ReplaceAllString(path, ":uuid")
}
