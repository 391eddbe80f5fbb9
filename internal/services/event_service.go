package services

import (
	"context"
	"strings"
	"time"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/go-playground/validator/v10"
)

type eventRepository interface {
	List(ctx context.Context) ([]entities.Event, error)
	GetByID(ctx context.Context, id uint) (*entities.Event, error)
	Create(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// EventService manages standalone announcements. Events carry no relation
// to vacancies or companies.
type EventService struct {
	events   eventRepository
	validate *validator.Validate
}

func NewEventService(events eventRepository) *EventService {
	return &EventService{events: events, validate: newValidator()}
}

type EventInput struct {
	Title         string    `json:"title" validate:"required,max=255"`
	Description   string    `json:"description"`
	EventDate     time.Time `json:"event_date" validate:"required"`
	Location      string    `json:"location" validate:"max=255"`
	CoverImageURL string    `json:"cover_image_url" validate:"max=255"`
}

func (s *EventService) List(ctx context.Context) ([]entities.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id uint) (*entities.Event, error) {

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, in EventInput) (*entities.Event, error) {

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	if violations := collectTagViolations(s.validate.Struct(&in)); len(violations) > 0 {
		return nil, violations
	}

	event := entities.Event{
		Title:         in.Title,
		Description:   in.Description,
		EventDate:     in.EventDate,
		Location:      in.Location,
		CoverImageURL: in.CoverImageURL,
	}
	if err := s.events.Create(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {

	found, err := s.events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
