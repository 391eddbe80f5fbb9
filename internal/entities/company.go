package entities

import "time"

type Company struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `json:"description"`
	Industry    string    `gorm:"size:100" json:"industry"`
	LogoURL     string    `gorm:"size:255" json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Vacancies []Vacancy `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Users     []User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type FieldOfStudy struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Role      Role      `gorm:"size:20" json:"role"`
	CompanyID *uint     `json:"company_id"`
	Company   *Company  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
