package service

import (
	"github.com/pgaray/landing-api/internal/domain"
	"github.com/pgaray/landing-api/internal/repository"
)

// AppService business logic for the portfolio apps catalog
type AppService interface {
	ListApps() ([]domain.App, error)
}

type appService struct {
	repo repository.AppRepository
}

// NewAppService creates a new AppService
func NewAppService(repo repository.AppRepository) AppService {
	return &appService{repo: repo}
}

// ListApps returns the catalog exactly as stored
func (s *appService) ListApps() ([]domain.App, error) {
	return s.repo.List()
}
