package services

import (
	"context"
	"strconv"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/repositories"
)

const (
	anyChoice       = "-1"
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListingParams carries the raw, optional query parameters of the read
// path. Empty strings and the "-1" sentinel impose no constraint.
type ListingParams struct {
	Position        string
	Specialization  string
	EmploymentType  string
	Experience      string
	IsActive        string
	SalaryMin       string
	City            string
	CompanyIndustry string
	Ordering        string
	Page            string
	PageSize        string
}

func isSet(param string) bool {
	return param != "" && param != anyChoice
}

// buildQuery validates every parameter and translates the set into a typed
// repository query. Validation failures surface as FilterError before any
// vacancy row is touched. When activeOnly is true and the caller did not
// ask about is_active explicitly, archived vacancies are excluded.
func (s *VacancyService) buildQuery(ctx context.Context, p ListingParams, activeOnly bool) (repositories.VacancyQuery, error) {

	q := repositories.VacancyQuery{
		Position: p.Position,
		City:     p.City,
		PageSize: defaultPageSize,
		Page:     1,
	}

	if isSet(p.Specialization) {
		id, err := strconv.ParseUint(p.Specialization, 10, 32)
		if err != nil {
			return q, newFilterError("Invalid specialization")
		}
		fieldID := uint(id)
		exists, err := s.fields.Exists(ctx, fieldID)
		if err != nil {
			return q, err
		}
		if !exists {
			return q, newFilterError("Invalid specialization")
		}
		q.FieldID = &fieldID
	}

	if isSet(p.EmploymentType) {
		et, err := entities.ToEmploymentType(p.EmploymentType)
		if err != nil {
			return q, newFilterError("Invalid employment type")
		}
		q.EmploymentType = et
	}

	if isSet(p.Experience) {
		exp, err := entities.ToExperience(p.Experience)
		if err != nil {
			return q, newFilterError("Invalid experience choice")
		}
		q.Experience = exp
	}

	if p.IsActive != "" {
		active, err := strconv.ParseBool(p.IsActive)
		if err != nil {
			return q, newFilterError("Invalid is_active value")
		}
		q.IsActive = &active
	} else if activeOnly {
		active := true
		q.IsActive = &active
	}

	if p.SalaryMin != "" {
		salary, err := strconv.Atoi(p.SalaryMin)
		if err != nil || salary < 0 {
			return q, newFilterError("Invalid salary_min value")
		}
		q.SalaryFrom = &salary
	}

	q.CompanyIndustry = p.CompanyIndustry

	switch p.Ordering {
	case "":
	case "salary_min":
		q.OrderBySalary = repositories.SalaryOrderAsc
	case "-salary_min":
		q.OrderBySalary = repositories.SalaryOrderDesc
	default:
		return q, newFilterError("Invalid ordering value")
	}

	if p.Page != "" {
		page, err := strconv.Atoi(p.Page)
		if err != nil || page < 1 {
			return q, newFilterError("Invalid page value")
		}
		q.Page = page
	}

	if p.PageSize != "" {
		size, err := strconv.Atoi(p.PageSize)
		if err != nil || size < 1 || size > maxPageSize {
			return q, newFilterError("Invalid page_size value")
		}
		q.PageSize = size
	}

	return q, nil
}
