package blog

import (
	"strings"
)

const (
	frontmatterDelimiter = "---"
	tagsKey              = "tags"
)

// Frontmatter is the metadata block at the top of a post.
// Only the tags key is list valued, so it is kept apart from the scalar fields.
type Frontmatter struct {
	Fields map[string]string
	Tags   []string // nil when the document has no usable tags entry
}

// Get returns a scalar field and whether it was present
func (f Frontmatter) Get(key string) (string, bool) {
	v, ok := f.Fields[key]
	return v, ok
}

// HasTags reports whether a tags entry was parsed
func (f Frontmatter) HasTags() bool {
	return f.Tags != nil
}

// ParseFrontmatter splits a raw document into its metadata block and body.
//
// The grammar is a line-oriented subset of YAML: one "key: value" pair per
// line, split on the first colon. Lines without a colon are ignored, and a
// document without a closing delimiter is treated as having no metadata.
func ParseFrontmatter(content string) (Frontmatter, string) {
	fm := Frontmatter{Fields: map[string]string{}}

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return fm, content
	}

	parts := strings.SplitN(content, frontmatterDelimiter, 3)
	if len(parts) < 3 {
		return fm, content
	}

	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if key == tagsKey {
			// empty tags produce no entry at all
			if value != "" {
				fm.Tags = splitTags(value)
			}
			continue
		}
		fm.Fields[key] = value
	}

	return fm, strings.TrimSpace(parts[2])
}

// unquote strips one matching pair of surrounding single or double quotes
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if first == last && (first == '"' || first == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}

func splitTags(v string) []string {
	raw := strings.Split(v, ",")
	tags := make([]string, len(raw))
	for i, t := range raw {
		tags[i] = strings.TrimSpace(t)
	}
	return tags
}
