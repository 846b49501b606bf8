package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pgaray/landing-api/internal/blog"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/domain"
	"github.com/pgaray/landing-api/internal/repository"
	"github.com/rs/zerolog"
)

// PostService business logic for blog posts
type PostService interface {
	ListPosts() ([]*domain.PostSummary, error)
	GetPost(slug string) (*domain.PostDetail, error)
}

type postService struct {
	repo     repository.PostRepository
	resolver *blog.Resolver
	renderer blog.Renderer
	log      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, resolver *blog.Resolver, renderer blog.Renderer, log zerolog.Logger) PostService {
	return &postService{repo: repo, resolver: resolver, renderer: renderer, log: log}
}

// ListPosts returns a summary of every post, newest date first.
//
// Dates are compared as plain strings, which orders YYYY-MM-DD values
// correctly and anything else arbitrarily. Posts with equal dates keep
// their enumeration order.
func (s *postService) ListPosts() ([]*domain.PostSummary, error) {
	slugs, err := s.repo.ListSlugs()
	if errors.Is(err, repository.ErrStorageMissing) {
		s.log.Debug().Msg("blog directory missing, returning empty listing")
		return []*domain.PostSummary{}, nil
	}
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.PostSummary, 0, len(slugs))
	for _, slug := range slugs {
		content, err := s.repo.Read(slug)
		if err != nil {
			// one unreadable post fails the whole listing
			return nil, fmt.Errorf("read post %q: %w", slug, err)
		}
		fm, body := blog.ParseFrontmatter(content)
		posts = append(posts, s.resolver.Summary(slug, fm, body))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})

	return posts, nil
}

// GetPost loads, resolves and renders a single post
func (s *postService) GetPost(slug string) (*domain.PostDetail, error) {
	content, err := s.repo.Read(slug)
	if errors.Is(err, common.ErrPostNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, &common.RenderError{Slug: slug, Err: err}
	}

	fm, body := blog.ParseFrontmatter(content)

	html, err := s.renderer.Render(body)
	if err != nil {
		return nil, &common.RenderError{Slug: slug, Err: err}
	}

	return s.resolver.Detail(slug, fm, html), nil
}
