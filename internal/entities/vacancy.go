package entities

import "time"

// Vacancy is the flat form of a job posting: listing metadata and content
// live in one row. SalaryMin/SalaryMax are pointers so "not specified" is
// distinguishable from zero.
type Vacancy struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `json:"description"`

	CompanyID uint     `gorm:"not null;index" json:"company_id"`
	Company   *Company `json:"company,omitempty"`

	FieldID *uint         `json:"field_id"`
	Field   *FieldOfStudy `gorm:"constraint:OnDelete:SET NULL" json:"field,omitempty"`

	IsActive bool `json:"is_active"`

	SalaryMin *int `json:"salary_min"`
	SalaryMax *int `json:"salary_max"`

	City    string `gorm:"size:100" json:"city"`
	Address string `gorm:"size:255" json:"address"`

	EmploymentType EmploymentType `gorm:"size:20" json:"employment_type"`
	Experience     Experience     `gorm:"size:10" json:"experience"`
	EducationLevel EducationLevel `gorm:"size:20" json:"education_level"`
	Schedule       Schedule       `gorm:"size:20" json:"schedule"`

	Requirements     string `json:"requirements"`
	Responsibilities string `json:"responsibilities"`
	Conditions       string `json:"conditions"`

	ResponseType        ResponseType `gorm:"size:20" json:"response_type"`
	ResponseDestination string       `gorm:"size:255" json:"response_destination"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Application struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	UserID        uint              `gorm:"not null;uniqueIndex:idx_user_vacancy" json:"user_id"`
	User          *User             `json:"-"`
	VacancyID     uint              `gorm:"not null;uniqueIndex:idx_user_vacancy" json:"vacancy_id"`
	Vacancy       *Vacancy          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ResumeFileURL string            `gorm:"size:255" json:"resume_file_url"`
	Status        ApplicationStatus `gorm:"size:20;default:pending" json:"status"`
	Notes         string            `json:"notes"`
	AppliedAt     time.Time         `gorm:"autoCreateTime" json:"applied_at"`
}

// Event is a standalone announcement, unrelated to vacancies.
type Event struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `json:"description"`
	EventDate     time.Time `json:"event_date"`
	Location      string    `gorm:"size:255" json:"location"`
	CoverImageURL string    `gorm:"size:255" json:"cover_image_url"`
}
