package services

import (
	"context"

	"github.com/dealflow/apiserver/types"
)

// CompanyRepository defines persistence operations for company listings.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int) (types.Company, error)
	List(ctx context.Context) ([]types.Company, error)
	Create(ctx context.Context, company types.Company) (types.Company, error)
}

// CompanyService encapsulates company listing use-cases.
type CompanyService struct {
	repo CompanyRepository
}

func NewCompanyService(repo CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) Get(ctx context.Context, id int) (types.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]types.Company, error) {
	return s.repo.List(ctx)
}

func (s *CompanyService) Create(ctx context.Context, company types.Company) (types.Company, error) {
	return s.repo.Create(ctx, company)
}
