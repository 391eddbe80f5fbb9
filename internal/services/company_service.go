package services

import (
	"context"
	"strings"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/metrics"
	"github.com/go-playground/validator/v10"
)

type companyRepository interface {
	List(ctx context.Context) ([]entities.Company, error)
	GetByID(ctx context.Context, id uint) (*entities.Company, error)
	Create(ctx context.Context, company *entities.Company, userID *uint) error
	Update(ctx context.Context, company *entities.Company, userID *uint) error
	Delete(ctx context.Context, id uint, userID *uint) (bool, error)
	History(ctx context.Context, companyID uint) ([]entities.CompanyHistory, error)
}

type CompanyService struct {
	companies companyRepository
	validate  *validator.Validate
}

func NewCompanyService(companies companyRepository) *CompanyService {
	return &CompanyService{companies: companies, validate: newValidator()}
}

type CompanyInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	Industry    string `json:"industry" validate:"max=100"`
	LogoURL     string `json:"logo_url" validate:"max=255"`
}

func (in *CompanyInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Industry = strings.TrimSpace(in.Industry)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
}

func (s *CompanyService) List(ctx context.Context) ([]entities.Company, error) {
	return s.companies.List(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id uint) (*entities.Company, error) {

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput, user *entities.User) (*entities.Company, error) {

	in.trim()
	if violations := collectTagViolations(s.validate.Struct(&in)); len(violations) > 0 {
		metrics.ValidationFailures.WithLabelValues("company").Inc()
		return nil, violations
	}

	company := entities.Company{
		Name:        in.Name,
		Description: in.Description,
		Industry:    in.Industry,
		LogoURL:     in.LogoURL,
	}
	if err := s.companies.Create(ctx, &company, userIDOf(user)); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uint, in CompanyInput, user *entities.User) (*entities.Company, error) {

	existing, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	in.trim()
	if violations := collectTagViolations(s.validate.Struct(&in)); len(violations) > 0 {
		metrics.ValidationFailures.WithLabelValues("company").Inc()
		return nil, violations
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Industry = in.Industry
	existing.LogoURL = in.LogoURL
	if err := s.companies.Update(ctx, existing, userIDOf(user)); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the company and cascades to its vacancies and users.
func (s *CompanyService) Delete(ctx context.Context, id uint, user *entities.User) error {

	found, err := s.companies.Delete(ctx, id, userIDOf(user))
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *CompanyService) History(ctx context.Context, id uint) ([]entities.CompanyHistory, error) {

	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return s.companies.History(ctx, id)
}
