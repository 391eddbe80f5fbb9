package entities

import "time"

// History rows are append-only snapshots of mutable entities. Every write to
// the primary row produces one snapshot in the same transaction, tagged with
// who performed it and what kind of change it was.

type HistoryType string

const (
	HistoryCreated HistoryType = "+"
	HistoryChanged HistoryType = "~"
	HistoryDeleted HistoryType = "-"
)

type CompanyHistory struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyID     uint   `gorm:"index;not null"`
	Name          string `gorm:"size:255"`
	Description   string
	Industry      string      `gorm:"size:100"`
	LogoURL       string      `gorm:"size:255"`
	HistoryType   HistoryType `gorm:"size:1"`
	HistoryUserID *uint
	HistoryTime   time.Time `gorm:"autoCreateTime"`
}

type VacancyHistory struct {
	ID        uint `gorm:"primaryKey"`
	VacancyID uint `gorm:"index;not null"`

	Title               string `gorm:"size:255"`
	Description         string
	CompanyID           uint
	FieldID             *uint
	IsActive            bool
	SalaryMin           *int
	SalaryMax           *int
	City                string         `gorm:"size:100"`
	Address             string         `gorm:"size:255"`
	EmploymentType      EmploymentType `gorm:"size:20"`
	Experience          Experience     `gorm:"size:10"`
	EducationLevel      EducationLevel `gorm:"size:20"`
	Schedule            Schedule       `gorm:"size:20"`
	Requirements        string
	Responsibilities    string
	Conditions          string
	ResponseType        ResponseType `gorm:"size:20"`
	ResponseDestination string       `gorm:"size:255"`

	HistoryType   HistoryType `gorm:"size:1"`
	HistoryUserID *uint
	HistoryTime   time.Time `gorm:"autoCreateTime"`
}

type ApplicationHistory struct {
	ID            uint `gorm:"primaryKey"`
	ApplicationID uint `gorm:"index;not null"`
	UserID        uint
	VacancyID     uint
	ResumeFileURL string            `gorm:"size:255"`
	Status        ApplicationStatus `gorm:"size:20"`
	Notes         string
	HistoryType   HistoryType `gorm:"size:1"`
	HistoryUserID *uint
	HistoryTime   time.Time `gorm:"autoCreateTime"`
}

// NewVacancySnapshot copies the current state of v into a history row.
func NewVacancySnapshot(v Vacancy, ht HistoryType, userID *uint) VacancyHistory {
	return VacancyHistory{
		VacancyID:           v.ID,
		Title:               v.Title,
		Description:         v.Description,
		CompanyID:           v.CompanyID,
		FieldID:             v.FieldID,
		IsActive:            v.IsActive,
		SalaryMin:           v.SalaryMin,
		SalaryMax:           v.SalaryMax,
		City:                v.City,
		Address:             v.Address,
		EmploymentType:      v.EmploymentType,
		Experience:          v.Experience,
		EducationLevel:      v.EducationLevel,
		Schedule:            v.Schedule,
		Requirements:        v.Requirements,
		Responsibilities:    v.Responsibilities,
		Conditions:          v.Conditions,
		ResponseType:        v.ResponseType,
		ResponseDestination: v.ResponseDestination,
		HistoryType:         ht,
		HistoryUserID:       userID,
	}
}

func NewCompanySnapshot(c Company, ht HistoryType, userID *uint) CompanyHistory {
	return CompanyHistory{
		CompanyID:     c.ID,
		Name:          c.Name,
		Description:   c.Description,
		Industry:      c.Industry,
		LogoURL:       c.LogoURL,
		HistoryType:   ht,
		HistoryUserID: userID,
	}
}

func NewApplicationSnapshot(a Application, ht HistoryType, userID *uint) ApplicationHistory {
	return ApplicationHistory{
		ApplicationID: a.ID,
		UserID:        a.UserID,
		VacancyID:     a.VacancyID,
		ResumeFileURL: a.ResumeFileURL,
		Status:        a.Status,
		Notes:         a.Notes,
		HistoryType:   ht,
		HistoryUserID: userID,
	}
}
