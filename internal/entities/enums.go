package entities

import "fmt"

// Enum codes are a stable wire contract: they appear in query parameters,
// stored rows and JSON payloads. Labels are the human-readable display
// strings used by templates and the xlsx export.

type EmploymentType string

const (
	EmploymentFull       EmploymentType = "full"
	EmploymentPart       EmploymentType = "part"
	EmploymentProject    EmploymentType = "project"
	EmploymentInternship EmploymentType = "internship"
)

var employmentTypeLabels = map[EmploymentType]string{
	EmploymentFull:       "Полная занятость",
	EmploymentPart:       "Частичная занятость",
	EmploymentProject:    "Проектная работа",
	EmploymentInternship: "Стажировка",
}

func ToEmploymentType(s string) (EmploymentType, error) {
	et := EmploymentType(s)
	if _, ok := employmentTypeLabels[et]; !ok {
		return "", fmt.Errorf("invalid employment type: %v", s)
	}
	return et, nil
}

func (e EmploymentType) Label() string {
	if label, ok := employmentTypeLabels[e]; ok {
		return label
	}
	return string(e)
}

type Experience string

const (
	ExperienceNone      Experience = "no"
	ExperienceUpTo1     Experience = "1"
	Experience1To3      Experience = "1-3"
	ExperienceMoreThan3 Experience = "3+"
)

var experienceLabels = map[Experience]string{
	ExperienceNone:      "Нет опыта",
	ExperienceUpTo1:     "До 1 года",
	Experience1To3:      "1–3 года",
	ExperienceMoreThan3: "Более 3 лет",
}

func ToExperience(s string) (Experience, error) {
	exp := Experience(s)
	if _, ok := experienceLabels[exp]; !ok {
		return "", fmt.Errorf("invalid experience choice: %v", s)
	}
	return exp, nil
}

func (e Experience) Label() string {
	if label, ok := experienceLabels[e]; ok {
		return label
	}
	return string(e)
}

type EducationLevel string

const (
	EducationHigh     EducationLevel = "high"
	EducationBachelor EducationLevel = "bachelor"
	EducationMaster   EducationLevel = "master"
	EducationStudent  EducationLevel = "student"
)

var educationLevelLabels = map[EducationLevel]string{
	EducationHigh:     "Среднее профессиональное",
	EducationBachelor: "Бакалавриат",
	EducationMaster:   "Магистратура",
	EducationStudent:  "Студент",
}

func ToEducationLevel(s string) (EducationLevel, error) {
	el := EducationLevel(s)
	if _, ok := educationLevelLabels[el]; !ok {
		return "", fmt.Errorf("invalid education level: %v", s)
	}
	return el, nil
}

func (e EducationLevel) Label() string {
	if label, ok := educationLevelLabels[e]; ok {
		return label
	}
	return string(e)
}

type Schedule string

const (
	ScheduleOffice      Schedule = "office"
	ScheduleRemote      Schedule = "remote"
	ScheduleHybrid      Schedule = "hybrid"
	ScheduleFlexible    Schedule = "flexible"
	ScheduleByAgreement Schedule = "by_agreement"
)

var scheduleLabels = map[Schedule]string{
	ScheduleOffice:      "Офис",
	ScheduleRemote:      "Удалёнка",
	ScheduleHybrid:      "Гибрид",
	ScheduleFlexible:    "Гибкий график",
	ScheduleByAgreement: "По договорённости",
}

func ToSchedule(s string) (Schedule, error) {
	sc := Schedule(s)
	if _, ok := scheduleLabels[sc]; !ok {
		return "", fmt.Errorf("invalid schedule type: %v", s)
	}
	return sc, nil
}

func (s Schedule) Label() string {
	if label, ok := scheduleLabels[s]; ok {
		return label
	}
	return string(s)
}

type ResponseType string

const (
	ResponseInternal     ResponseType = "internal"
	ResponseEmail        ResponseType = "email"
	ResponseExternalLink ResponseType = "external_link"
)

var responseTypeLabels = map[ResponseType]string{
	ResponseInternal:     "Внутренний отклик",
	ResponseEmail:        "Email",
	ResponseExternalLink: "Внешняя ссылка",
}

func ToResponseType(s string) (ResponseType, error) {
	rt := ResponseType(s)
	if _, ok := responseTypeLabels[rt]; !ok {
		return "", fmt.Errorf("invalid response type: %v", s)
	}
	return rt, nil
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusInvited  ApplicationStatus = "invited"
	StatusRejected ApplicationStatus = "rejected"
)

var applicationStatusLabels = map[ApplicationStatus]string{
	StatusPending:  "На рассмотрении",
	StatusReviewed: "Рассмотрено",
	StatusInvited:  "Приглашён",
	StatusRejected: "Отклонено",
}

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	if _, ok := applicationStatusLabels[st]; !ok {
		return "", fmt.Errorf("invalid application status: %v", s)
	}
	return st, nil
}

func (s ApplicationStatus) Label() string {
	if label, ok := applicationStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
	RoleStudent Role = "student"
)

var roleLabels = map[Role]string{
	RoleAdmin:   "Администратор",
	RolePartner: "Компания-партнёр",
	RoleStudent: "Студент",
}

func ToRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleLabels[r]; !ok {
		return "", fmt.Errorf("invalid role: %v", s)
	}
	return r, nil
}
