// Package slug derives URL-safe identifiers from display names.
//
// Two rule families exist: tags keep dots as a "-dot-" infix so ".NET"
// stays recognizable, while tutorials and tracks strip dots entirely.
// Tutorial slugs additionally get a random token suffix because tutorial
// slugs carry no uniqueness constraint in the store.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	spaceRun   = regexp.MustCompile(` +`)
	leadingDot = regexp.MustCompile(`^\.`)
	nonSlug    = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// Tag slugifies a tag name. Dots become "-dot-" ("dot-" when leading).
func Tag(name string) string {
	s := spaceRun.ReplaceAllString(name, "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "#", "-sharp")
	s = strings.ReplaceAll(s, "+", "-plus")
	s = leadingDot.ReplaceAllString(s, "dot-")
	s = strings.ReplaceAll(s, ".", "-dot-")
	s = nonSlug.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// Tutorial slugifies a tutorial title and appends a random url-safe
// token. Two identical titles yield different slugs.
func Tutorial(title string) string {
	return base(title) + "-" + token()
}

// Track slugifies a track name. Dots are stripped with no separator.
func Track(name string) string {
	return base(name)
}

func base(name string) string {
	s := strings.ReplaceAll(name, "-", "")
	s = spaceRun.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "#", "-sharp")
	s = strings.ReplaceAll(s, "+", "-plus")
	s = strings.ReplaceAll(s, ".", "")
	s = nonSlug.ReplaceAllString(s, "")
	return strings.ToLower(s)
}

// token returns a short non-sequential identifier safe for URLs.
func token() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}
