package repositories

import (
	"context"
	"errors"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

type Events struct {
	db *gorm.DB
}

func NewEventsRepository(db *gorm.DB) *Events {
	return &Events{db: db}
}

func (repo *Events) List(ctx context.Context) ([]entities.Event, error) {

	var events []entities.Event
	err := repo.db.WithContext(ctx).Order("event_date DESC, id DESC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns (nil, nil) when no event with this id exists.
func (repo *Events) GetByID(ctx context.Context, id uint) (*entities.Event, error) {

	var event entities.Event
	err := repo.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (repo *Events) Create(ctx context.Context, event *entities.Event) error {
	return repo.db.WithContext(ctx).Create(event).Error
}

func (repo *Events) Delete(ctx context.Context, id uint) (bool, error) {
	res := repo.db.WithContext(ctx).Delete(&entities.Event{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
