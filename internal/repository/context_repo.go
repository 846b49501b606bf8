package repository

import (
	"errors"
	"io/fs"
	"os"
)

// NoContextMessage stands in for the biography when no context file exists
const NoContextMessage = "No context available. Please create a context.md file."

// ContextRepository provides the biography text injected into chat prompts
type ContextRepository interface {
	Load() (string, error)
}

type contextRepository struct {
	path string
}

// NewContextRepository creates a ContextRepository reading the markdown file at path
func NewContextRepository(path string) ContextRepository {
	return &contextRepository{path: path}
}

// Load implements ContextRepository. A missing file is not an error.
func (r *contextRepository) Load() (string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NoContextMessage, nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
