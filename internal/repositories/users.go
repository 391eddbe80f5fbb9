package repositories

import (
	"context"
	"errors"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

// GetByID returns (nil, nil) when no user with this id exists.
func (repo *Users) GetByID(ctx context.Context, id uint) (*entities.User, error) {

	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) Create(ctx context.Context, user *entities.User) error {
	return repo.db.WithContext(ctx).Create(user).Error
}
