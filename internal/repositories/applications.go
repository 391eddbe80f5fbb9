package repositories

import (
	"context"
	"errors"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) ExistsForUserAndVacancy(ctx context.Context, userID, vacancyID uint) (bool, error) {

	var application entities.Application
	err := repo.db.WithContext(ctx).
		First(&application, "user_id = ? AND vacancy_id = ?", userID, vacancyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (repo *Applications) Create(ctx context.Context, application *entities.Application, userID *uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}
		snapshot := entities.NewApplicationSnapshot(*application, entities.HistoryCreated, userID)
		return tx.Create(&snapshot).Error
	})
}

func (repo *Applications) UpdateStatus(ctx context.Context, id uint,
	status entities.ApplicationStatus, userID *uint) (*entities.Application, error) {

	var application entities.Application
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&application).Update("status", status).Error; err != nil {
			return err
		}
		application.Status = status
		snapshot := entities.NewApplicationSnapshot(application, entities.HistoryChanged, userID)
		return tx.Create(&snapshot).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (repo *Applications) ListForVacancy(ctx context.Context, vacancyID uint) ([]entities.Application, error) {

	var applications []entities.Application
	err := repo.db.WithContext(ctx).Preload("User").
		Where("vacancy_id = ?", vacancyID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
