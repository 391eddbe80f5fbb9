package repositories

import (
	"fmt"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {

	models := []struct {
		name  string
		model any
	}{
		{"Company", entities.Company{}},
		{"FieldOfStudy", entities.FieldOfStudy{}},
		{"User", entities.User{}},
		{"Vacancy", entities.Vacancy{}},
		{"Application", entities.Application{}},
		{"Event", entities.Event{}},
		{"CompanyHistory", entities.CompanyHistory{}},
		{"VacancyHistory", entities.VacancyHistory{}},
		{"ApplicationHistory", entities.ApplicationHistory{}},
	}

	for _, m := range models {
		if err := c.DB.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", m.name, err)
		}
	}

	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_user_vacancy ON applications (user_id, vacancy_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
