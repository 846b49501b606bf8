package repository

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pgaray/landing-api/internal/common"
)

// PostExt is the file extension of blog post sources
const PostExt = ".md"

// ErrStorageMissing is returned by ListSlugs when the blog directory itself does not exist
var ErrStorageMissing = errors.New("blog directory does not exist")

// PostRepository reads raw blog post documents
type PostRepository interface {
	// ListSlugs returns the slug of every post source, in no particular order
	ListSlugs() ([]string, error)
	// Read returns the full text of one post source
	Read(slug string) (string, error)
}

// postRepository reads "<slug>.md" files from a single directory
type postRepository struct {
	dir string
}

// NewPostRepository creates a PostRepository rooted at dir
func NewPostRepository(dir string) PostRepository {
	return &postRepository{dir: dir}
}

// ListSlugs implements PostRepository
func (r *postRepository) ListSlugs() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrStorageMissing
	}
	if err != nil {
		return nil, fmt.Errorf("list blog directory: %w", err)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, PostExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, PostExt))
	}
	return slugs, nil
}

// Read implements PostRepository.
// Unknown slugs, and slugs that would resolve outside the blog directory,
// report common.ErrPostNotFound.
func (r *postRepository) Read(slug string) (string, error) {
	path, ok := r.pathFor(slug)
	if !ok {
		return "", common.ErrPostNotFound
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", common.ErrPostNotFound
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// pathFor maps a slug to its source file. Only a path separator can move
// "<slug>.md" out of the directory, so dots anywhere in a slug are fine.
func (r *postRepository) pathFor(slug string) (string, bool) {
	if strings.ContainsRune(slug, '/') || strings.ContainsRune(slug, filepath.Separator) {
		return "", false
	}
	path := filepath.Join(r.dir, slug+PostExt)
	if filepath.Dir(path) != filepath.Clean(r.dir) {
		return "", false
	}
	return path, true
}
