package repositories

import (
	"context"
	"errors"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) List(ctx context.Context) ([]entities.Company, error) {

	var companies []entities.Company
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// GetByID returns (nil, nil) when no company with this id exists.
func (repo *Companies) GetByID(ctx context.Context, id uint) (*entities.Company, error) {

	var company entities.Company
	err := repo.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) Create(ctx context.Context, company *entities.Company, userID *uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		snapshot := entities.NewCompanySnapshot(*company, entities.HistoryCreated, userID)
		return tx.Create(&snapshot).Error
	})
}

func (repo *Companies) Update(ctx context.Context, company *entities.Company, userID *uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(company).Error; err != nil {
			return err
		}
		snapshot := entities.NewCompanySnapshot(*company, entities.HistoryChanged, userID)
		return tx.Create(&snapshot).Error
	})
}

// Delete removes the company together with its vacancies and users. The
// cascade is explicit so it holds regardless of the driver's foreign key
// enforcement.
func (repo *Companies) Delete(ctx context.Context, id uint, userID *uint) (bool, error) {

	found := true
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company entities.Company
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		}
		snapshot := entities.NewCompanySnapshot(company, entities.HistoryDeleted, userID)
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}

		var vacancyIDs []uint
		if err := tx.Model(&entities.Vacancy{}).Where("company_id = ?", id).
			Pluck("id", &vacancyIDs).Error; err != nil {
			return err
		}
		if len(vacancyIDs) > 0 {
			if err := tx.Delete(&entities.Application{}, "vacancy_id IN ?", vacancyIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entities.Vacancy{}, "id IN ?", vacancyIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&entities.User{}, "company_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Company{}, "id = ?", id).Error
	})
	return found, err
}

// History returns the audit trail of a company, oldest snapshot first.
func (repo *Companies) History(ctx context.Context, companyID uint) ([]entities.CompanyHistory, error) {

	var history []entities.CompanyHistory
	err := repo.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
