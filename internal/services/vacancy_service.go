package services

import (
	"context"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/events"
	"github.com/dkurbatov/career-center/internal/metrics"
	"github.com/dkurbatov/career-center/internal/repositories"
	"github.com/go-playground/validator/v10"
)

type vacancyRepository interface {
	Search(ctx context.Context, q repositories.VacancyQuery) ([]entities.Vacancy, int64, error)
	GetByID(ctx context.Context, id uint) (*entities.Vacancy, error)
	Create(ctx context.Context, vacancy *entities.Vacancy, userID *uint) error
	Update(ctx context.Context, vacancy *entities.Vacancy, userID *uint) error
	SetActive(ctx context.Context, id uint, active bool, userID *uint) (*entities.Vacancy, error)
	Delete(ctx context.Context, id uint, userID *uint) (bool, error)
	History(ctx context.Context, vacancyID uint) ([]entities.VacancyHistory, error)
}

type fieldLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type companyLookup interface {
	GetByID(ctx context.Context, id uint) (*entities.Company, error)
}

// VacancyPage is one page of listing results.
type VacancyPage struct {
	Items []entities.Vacancy `json:"items"`
	Total int64              `json:"total"`
}

type VacancyService struct {
	vacancies vacancyRepository
	fields    fieldLookup
	companies companyLookup
	bus       EventBus.Bus
	validate  *validator.Validate
}

func NewVacancyService(vacancies vacancyRepository, fields fieldLookup,
	companies companyLookup, bus EventBus.Bus) *VacancyService {

	return &VacancyService{
		vacancies: vacancies,
		fields:    fields,
		companies: companies,
		bus:       bus,
		validate:  newValidator(),
	}
}

// List returns active vacancies matching the filters; an explicit is_active
// parameter widens or narrows that default.
func (s *VacancyService) List(ctx context.Context, params ListingParams) (*VacancyPage, error) {

	query, err := s.buildQuery(ctx, params, true)
	if err != nil {
		return nil, err
	}

	items, total, err := s.vacancies.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return &VacancyPage{Items: items, Total: total}, nil
}

// ListMine scopes the listing to the partner's company. Callers without an
// identity or a company affiliation get an empty page, never the global set.
func (s *VacancyService) ListMine(ctx context.Context, user *entities.User, params ListingParams) (*VacancyPage, error) {

	if user == nil || user.CompanyID == nil {
		return &VacancyPage{Items: []entities.Vacancy{}}, nil
	}

	query, err := s.buildQuery(ctx, params, false)
	if err != nil {
		return nil, err
	}
	query.CompanyID = user.CompanyID

	items, total, err := s.vacancies.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return &VacancyPage{Items: items, Total: total}, nil
}

func (s *VacancyService) Get(ctx context.Context, id uint) (*entities.Vacancy, error) {

	vacancy, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrNotFound
	}
	return vacancy, nil
}

// VacancyInput is the field set of a create or update submission. String
// fields are trimmed before validation and storage.
type VacancyInput struct {
	Title               string `json:"title" validate:"required,max=255"`
	Description         string `json:"description"`
	CompanyID           uint   `json:"company_id" validate:"required"`
	FieldID             *uint  `json:"field_id"`
	IsActive            *bool  `json:"is_active"`
	SalaryMin           *int   `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax           *int   `json:"salary_max" validate:"omitempty,min=0"`
	City                string `json:"city" validate:"required,max=100"`
	Address             string `json:"address" validate:"max=255"`
	EmploymentType      string `json:"employment_type"`
	Experience          string `json:"experience"`
	EducationLevel      string `json:"education_level"`
	Schedule            string `json:"schedule"`
	Requirements        string `json:"requirements" validate:"required"`
	Responsibilities    string `json:"responsibilities" validate:"required"`
	Conditions          string `json:"conditions" validate:"required"`
	ResponseType        string `json:"response_type"`
	ResponseDestination string `json:"response_destination"`
}

func (in *VacancyInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.City = strings.TrimSpace(in.City)
	in.Address = strings.TrimSpace(in.Address)
	in.Requirements = strings.TrimSpace(in.Requirements)
	in.Responsibilities = strings.TrimSpace(in.Responsibilities)
	in.Conditions = strings.TrimSpace(in.Conditions)
	in.ResponseDestination = strings.TrimSpace(in.ResponseDestination)
}

// validateInput collects every violation instead of stopping at the first.
func (s *VacancyService) validateInput(ctx context.Context, in *VacancyInput) (ValidationErrors, error) {

	in.trim()
	violations := collectTagViolations(s.validate.Struct(in))

	if in.EmploymentType != "" {
		if _, err := entities.ToEmploymentType(in.EmploymentType); err != nil {
			violations.Add("employment_type", "invalid employment type")
		}
	}
	if in.Experience != "" {
		if _, err := entities.ToExperience(in.Experience); err != nil {
			violations.Add("experience", "invalid experience choice")
		}
	}
	if in.EducationLevel != "" {
		if _, err := entities.ToEducationLevel(in.EducationLevel); err != nil {
			violations.Add("education_level", "invalid education level")
		}
	}
	if in.Schedule != "" {
		if _, err := entities.ToSchedule(in.Schedule); err != nil {
			violations.Add("schedule", "invalid schedule type")
		}
	}
	if in.ResponseType != "" {
		if _, err := entities.ToResponseType(in.ResponseType); err != nil {
			violations.Add("response_type", "invalid response type")
		}
	}

	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		violations.Add("salary_min", "salary_min must not exceed salary_max")
		violations.Add("salary_max", "salary_min must not exceed salary_max")
	}

	if in.CompanyID != 0 {
		company, err := s.companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			violations.Add("company_id", "unknown company")
		}
	}
	if in.FieldID != nil {
		exists, err := s.fields.Exists(ctx, *in.FieldID)
		if err != nil {
			return nil, err
		}
		if !exists {
			violations.Add("field_id", "unknown field of study")
		}
	}

	if len(violations) > 0 {
		return violations, nil
	}
	return nil, nil
}

func (in *VacancyInput) applyTo(vacancy *entities.Vacancy) {

	vacancy.Title = in.Title
	vacancy.Description = in.Description
	vacancy.CompanyID = in.CompanyID
	vacancy.FieldID = in.FieldID
	vacancy.SalaryMin = in.SalaryMin
	vacancy.SalaryMax = in.SalaryMax
	vacancy.City = in.City
	vacancy.Address = in.Address
	vacancy.EmploymentType = entities.EmploymentType(in.EmploymentType)
	vacancy.Experience = entities.Experience(in.Experience)
	vacancy.EducationLevel = entities.EducationLevel(in.EducationLevel)
	vacancy.Schedule = entities.Schedule(in.Schedule)
	vacancy.Requirements = in.Requirements
	vacancy.Responsibilities = in.Responsibilities
	vacancy.Conditions = in.Conditions
	vacancy.ResponseType = entities.ResponseType(in.ResponseType)
	vacancy.ResponseDestination = in.ResponseDestination
	if in.IsActive != nil {
		vacancy.IsActive = *in.IsActive
	}
}

func (s *VacancyService) Create(ctx context.Context, in VacancyInput, user *entities.User) (*entities.Vacancy, error) {

	violations, err := s.validateInput(ctx, &in)
	if err != nil {
		return nil, err
	}
	if violations != nil {
		metrics.ValidationFailures.WithLabelValues("vacancy").Inc()
		return nil, violations
	}

	vacancy := entities.Vacancy{IsActive: true}
	in.applyTo(&vacancy)

	if err := s.vacancies.Create(ctx, &vacancy, userIDOf(user)); err != nil {
		return nil, err
	}
	return s.Get(ctx, vacancy.ID)
}

func (s *VacancyService) Update(ctx context.Context, id uint, in VacancyInput, user *entities.User) (*entities.Vacancy, error) {

	existing, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	violations, err := s.validateInput(ctx, &in)
	if err != nil {
		return nil, err
	}
	if violations != nil {
		metrics.ValidationFailures.WithLabelValues("vacancy").Inc()
		return nil, violations
	}

	in.applyTo(existing)
	existing.Company = nil
	existing.Field = nil
	if err := s.vacancies.Update(ctx, existing, userIDOf(user)); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Archive flips is_active to false without re-validating the record. It is
// idempotent: archiving an archived vacancy succeeds and changes nothing.
func (s *VacancyService) Archive(ctx context.Context, id uint, user *entities.User) (*entities.Vacancy, error) {

	vacancy, err := s.vacancies.SetActive(ctx, id, false, userIDOf(user))
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrNotFound
	}

	s.bus.Publish(events.VacancyArchivedTopic, events.VacancyArchived{
		Vacancy: *vacancy,
		UserID:  userIDOf(user),
	})
	return vacancy, nil
}

func (s *VacancyService) Delete(ctx context.Context, id uint, user *entities.User) error {

	found, err := s.vacancies.Delete(ctx, id, userIDOf(user))
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// History returns the audit trail of a vacancy, oldest first.
func (s *VacancyService) History(ctx context.Context, id uint) ([]entities.VacancyHistory, error) {

	vacancy, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrNotFound
	}
	return s.vacancies.History(ctx, id)
}

func userIDOf(user *entities.User) *uint {
	if user == nil {
		return nil
	}
	return &user.ID
}
