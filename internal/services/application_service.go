package services

import (
	"context"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/events"
	"github.com/dkurbatov/career-center/internal/metrics"
)

type applicationRepository interface {
	ExistsForUserAndVacancy(ctx context.Context, userID, vacancyID uint) (bool, error)
	Create(ctx context.Context, application *entities.Application, userID *uint) error
	UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus, userID *uint) (*entities.Application, error)
	ListForVacancy(ctx context.Context, vacancyID uint) ([]entities.Application, error)
}

type ApplicationService struct {
	applications applicationRepository
	vacancies    vacancyRepository
	bus          EventBus.Bus
}

func NewApplicationService(applications applicationRepository,
	vacancies vacancyRepository, bus EventBus.Bus) *ApplicationService {

	return &ApplicationService{applications: applications, vacancies: vacancies, bus: bus}
}

type ApplicationInput struct {
	ResumeFileURL string `json:"resume_file_url"`
	Notes         string `json:"notes"`
}

// Apply submits an application of user to vacancy. The vacancy must exist
// and be active; a repeated (user, vacancy) pair is rejected before any
// write, with the unique index as a backstop against racing submissions.
func (s *ApplicationService) Apply(ctx context.Context, user *entities.User,
	vacancyID uint, in ApplicationInput) (*entities.Application, error) {

	vacancy, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrNotFound
	}
	if !vacancy.IsActive {
		violations := ValidationErrors{}
		violations.Add("vacancy_id", "vacancy is archived")
		return nil, violations
	}

	exists, err := s.applications.ExistsForUserAndVacancy(ctx, user.ID, vacancyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateApplication
	}

	application := entities.Application{
		UserID:        user.ID,
		VacancyID:     vacancyID,
		ResumeFileURL: strings.TrimSpace(in.ResumeFileURL),
		Status:        entities.StatusPending,
		Notes:         strings.TrimSpace(in.Notes),
	}
	if err := s.applications.Create(ctx, &application, &user.ID); err != nil {
		return nil, err
	}

	s.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		Application: application,
	})
	return &application, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint,
	status string, user *entities.User) (*entities.Application, error) {

	parsed, err := entities.ToApplicationStatus(status)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("application").Inc()
		violations := ValidationErrors{}
		violations.Add("status", "invalid application status")
		return nil, violations
	}

	application, err := s.applications.UpdateStatus(ctx, id, parsed, userIDOf(user))
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrNotFound
	}
	return application, nil
}

func (s *ApplicationService) ListForVacancy(ctx context.Context, vacancyID uint) ([]entities.Application, error) {

	vacancy, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrNotFound
	}
	return s.applications.ListForVacancy(ctx, vacancyID)
}
