package blog

import (
	"strings"

	"github.com/pgaray/landing-api/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultAuthor is used when a post does not name its author
	DefaultAuthor = "Pablo Garay"

	excerptMaxRunes = 200
	excerptSuffix   = "..."
)

// Resolver fills in post metadata that the frontmatter leaves out
type Resolver struct {
	defaultAuthor string
}

// NewResolver creates a Resolver; an empty author falls back to DefaultAuthor
func NewResolver(defaultAuthor string) *Resolver {
	if defaultAuthor == "" {
		defaultAuthor = DefaultAuthor
	}
	return &Resolver{defaultAuthor: defaultAuthor}
}

// Summary builds the listing view of a post.
// A missing excerpt is derived from the first paragraph of the body.
func (r *Resolver) Summary(slug string, fm Frontmatter, body string) *domain.PostSummary {
	s := r.base(slug, fm)
	if excerpt, _ := fm.Get("excerpt"); excerpt != "" {
		s.Excerpt = excerpt
	} else {
		s.Excerpt = DeriveExcerpt(body)
	}
	return s
}

// Detail builds the single-post view around already rendered HTML.
// The excerpt is only ever taken from the frontmatter here.
func (r *Resolver) Detail(slug string, fm Frontmatter, html string) *domain.PostDetail {
	s := r.base(slug, fm)
	s.Excerpt, _ = fm.Get("excerpt")
	return &domain.PostDetail{PostSummary: *s, Content: html}
}

func (r *Resolver) base(slug string, fm Frontmatter) *domain.PostSummary {
	s := &domain.PostSummary{
		Slug:   slug,
		Author: r.defaultAuthor,
		Tags:   []string{},
	}

	if title, _ := fm.Get("title"); title != "" {
		s.Title = title
	} else {
		s.Title = TitleFromSlug(slug)
	}
	if author, ok := fm.Get("author"); ok {
		s.Author = author
	}
	s.Date, _ = fm.Get("date")
	if fm.HasTags() {
		s.Tags = fm.Tags
	}

	return s
}

// TitleFromSlug turns "my-first-post" into "My First Post"
func TitleFromSlug(slug string) string {
	// Casers keep state, so one is built per call
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// DeriveExcerpt returns the first non-empty paragraph of body, cut to 200
// characters. The ellipsis is appended whether or not anything was cut.
func DeriveExcerpt(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	for _, p := range strings.Split(body, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if runes := []rune(p); len(runes) > excerptMaxRunes {
			p = string(runes[:excerptMaxRunes])
		}
		return p + excerptSuffix
	}
	return ""
}
