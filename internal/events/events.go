package events

import "github.com/dkurbatov/career-center/internal/entities"

var VacancyArchivedTopic = "VacancyArchivedEvent"

type VacancyArchived struct {
	Vacancy entities.Vacancy
	UserID  *uint
}

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	Application entities.Application
}
