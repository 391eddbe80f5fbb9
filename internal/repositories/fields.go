package repositories

import (
	"context"
	"errors"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type Fields struct {
	db *gorm.DB
}

func NewFieldsRepository(db *gorm.DB) *Fields {
	return &Fields{db: db}
}

func (repo *Fields) List(ctx context.Context) ([]entities.FieldOfStudy, error) {

	var fields []entities.FieldOfStudy
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (repo *Fields) Exists(ctx context.Context, id uint) (bool, error) {

	var field entities.FieldOfStudy
	err := repo.db.WithContext(ctx).First(&field, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (repo *Fields) Create(ctx context.Context, field *entities.FieldOfStudy) error {
	return repo.db.WithContext(ctx).Create(field).Error
}
