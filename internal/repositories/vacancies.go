package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type SalaryOrder string

const (
	SalaryOrderNone SalaryOrder = ""
	SalaryOrderAsc  SalaryOrder = "asc"
	SalaryOrderDesc SalaryOrder = "desc"
)

// VacancyQuery is a fully validated, typed set of filters. All conditions
// compose with AND; zero values impose no constraint. Vacancies with unset
// salary never pass a SalaryFrom threshold.
type VacancyQuery struct {
	Position        string
	FieldID         *uint
	EmploymentType  entities.EmploymentType
	Experience      entities.Experience
	IsActive        *bool
	SalaryFrom      *int
	City            string
	CompanyIndustry string
	CompanyID       *uint
	OrderBySalary   SalaryOrder
	Page            int
	PageSize        int
}

type Vacancies struct {
	db *gorm.DB
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db}
}

func (v *Vacancies) apply(db *gorm.DB, q VacancyQuery) *gorm.DB {

	if q.Position != "" {
		db = db.Where("LOWER(vacancies.title) LIKE ?", "%"+strings.ToLower(q.Position)+"%")
	}
	if q.FieldID != nil {
		db = db.Where("vacancies.field_id = ?", *q.FieldID)
	}
	if q.EmploymentType != "" {
		db = db.Where("vacancies.employment_type = ?", q.EmploymentType)
	}
	if q.Experience != "" {
		db = db.Where("vacancies.experience = ?", q.Experience)
	}
	if q.IsActive != nil {
		db = db.Where("vacancies.is_active = ?", *q.IsActive)
	}
	if q.SalaryFrom != nil {
		db = db.Where("vacancies.salary_min >= ?", *q.SalaryFrom)
	}
	if q.City != "" {
		db = db.Where("LOWER(vacancies.city) = ?", strings.ToLower(q.City))
	}
	if q.CompanyIndustry != "" {
		db = db.Joins("JOIN companies ON companies.id = vacancies.company_id").
			Where("LOWER(companies.industry) LIKE ?", "%"+strings.ToLower(q.CompanyIndustry)+"%")
	}
	if q.CompanyID != nil {
		db = db.Where("vacancies.company_id = ?", *q.CompanyID)
	}
	return db
}

// Search returns the matching page of vacancies with Company and Field
// preloaded, plus the total match count before pagination.
func (v *Vacancies) Search(ctx context.Context, q VacancyQuery) ([]entities.Vacancy, int64, error) {

	db := v.apply(v.db.WithContext(ctx).Model(&entities.Vacancy{}), q)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.OrderBySalary {
	case SalaryOrderAsc:
		db = db.Order("vacancies.salary_min ASC")
	case SalaryOrderDesc:
		db = db.Order("vacancies.salary_min DESC")
	default:
		db = db.Order("vacancies.created_at DESC, vacancies.id DESC")
	}

	if q.PageSize > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		db = db.Limit(q.PageSize).Offset((page - 1) * q.PageSize)
	}

	var vacancies []entities.Vacancy
	if err := db.Preload("Company").Preload("Field").Find(&vacancies).Error; err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

// GetByID returns (nil, nil) when no vacancy with this id exists.
func (v *Vacancies) GetByID(ctx context.Context, id uint) (*entities.Vacancy, error) {

	var vacancy entities.Vacancy
	err := v.db.WithContext(ctx).Preload("Company").Preload("Field").
		First(&vacancy, "vacancies.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}

// Create persists the vacancy and its initial history snapshot atomically.
func (v *Vacancies) Create(ctx context.Context, vacancy *entities.Vacancy, userID *uint) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vacancy).Error; err != nil {
			return err
		}
		snapshot := entities.NewVacancySnapshot(*vacancy, entities.HistoryCreated, userID)
		return tx.Create(&snapshot).Error
	})
}

// Update overwrites the row and appends a snapshot in one transaction.
func (v *Vacancies) Update(ctx context.Context, vacancy *entities.Vacancy, userID *uint) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(vacancy).Error; err != nil {
			return err
		}
		snapshot := entities.NewVacancySnapshot(*vacancy, entities.HistoryChanged, userID)
		return tx.Create(&snapshot).Error
	})
}

// SetActive flips only the is_active flag, leaving the rest of the record
// untouched, and returns the updated vacancy.
func (v *Vacancies) SetActive(ctx context.Context, id uint, active bool, userID *uint) (*entities.Vacancy, error) {

	var vacancy entities.Vacancy
	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vacancy, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&vacancy).Update("is_active", active).Error; err != nil {
			return err
		}
		vacancy.IsActive = active
		snapshot := entities.NewVacancySnapshot(vacancy, entities.HistoryChanged, userID)
		return tx.Create(&snapshot).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}

// Delete removes the vacancy after recording a final snapshot.
func (v *Vacancies) Delete(ctx context.Context, id uint, userID *uint) (bool, error) {

	found := true
	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vacancy entities.Vacancy
		if err := tx.First(&vacancy, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}
		snapshot := entities.NewVacancySnapshot(vacancy, entities.HistoryDeleted, userID)
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Application{}, "vacancy_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Vacancy{}, "id = ?", id).Error
	})
	return found, err
}

// ActiveByCompany returns the company's active vacancies, newest first.
func (v *Vacancies) ActiveByCompany(ctx context.Context, companyID uint) ([]entities.Vacancy, error) {

	var vacancies []entities.Vacancy
	err := v.db.WithContext(ctx).Preload("Company").
		Where("company_id = ? AND is_active = ?", companyID, true).
		Order("created_at DESC, id DESC").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// History returns the audit trail of a vacancy, oldest snapshot first.
func (v *Vacancies) History(ctx context.Context, vacancyID uint) ([]entities.VacancyHistory, error) {

	var history []entities.VacancyHistory
	err := v.db.WithContext(ctx).
		Where("vacancy_id = ?", vacancyID).
		Order("id ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
