package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/domain"
)

// AppRepository reads the portfolio apps catalog
type AppRepository interface {
	List() ([]domain.App, error)
}

// appRepository decodes a JSON array file on every call
type appRepository struct {
	path string
}

// NewAppRepository creates an AppRepository backed by the JSON file at path
func NewAppRepository(path string) AppRepository {
	return &appRepository{path: path}
}

// List implements AppRepository
func (r *appRepository) List() ([]domain.App, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrAppsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read apps data: %w", err)
	}

	apps := []domain.App{}
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, &common.DataFormatError{Path: r.path, Err: err}
	}
	if apps == nil {
		apps = []domain.App{}
	}
	for i := range apps {
		if apps[i].TechStack == nil {
			apps[i].TechStack = []string{}
		}
	}
	return apps, nil
}
