package repositories

import (
	"context"
	"fmt"

	"github.com/dkurbatov/career-center/internal/entities"
	"gorm.io/gorm"
)

// Seed wipes the store and repopulates it with sample data for local
// development. Everything happens in one transaction.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for _, model := range []any{
			&entities.Application{}, &entities.Vacancy{}, &entities.User{},
			&entities.Company{}, &entities.FieldOfStudy{}, &entities.Event{},
			&entities.ApplicationHistory{}, &entities.VacancyHistory{}, &entities.CompanyHistory{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		fieldNames := []string{
			"Информационные технологии", "Экономика", "Машиностроение",
			"Управление", "Дизайн", "Робототехника",
		}
		fields := make([]entities.FieldOfStudy, 0, len(fieldNames))
		for _, name := range fieldNames {
			fields = append(fields, entities.FieldOfStudy{Name: name})
		}
		if err := tx.Create(&fields).Error; err != nil {
			return err
		}

		companies := []entities.Company{
			{Name: "ТехноСофт", Industry: "Информационные технологии", Description: "Разработка корпоративного ПО"},
			{Name: "ПромМаш", Industry: "Машиностроение", Description: "Производство станков и оснастки"},
			{Name: "Дизайн-Бюро Вектор", Industry: "Дизайн", Description: "Промышленный и графический дизайн"},
		}
		if err := tx.Create(&companies).Error; err != nil {
			return err
		}

		partner := entities.User{
			Email:     "hr@technosoft.ru",
			FullName:  "HR Партнёр",
			Role:      entities.RolePartner,
			CompanyID: &companies[0].ID,
		}
		admin := entities.User{
			Email:    "admin@careercenter.ru",
			FullName: "Администратор",
			Role:     entities.RoleAdmin,
		}
		students := []entities.User{
			{Email: "ivanov@student.ru", FullName: "Иван Иванов", Role: entities.RoleStudent},
			{Email: "petrova@student.ru", FullName: "Мария Петрова", Role: entities.RoleStudent},
		}
		users := append([]entities.User{partner, admin}, students...)
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		salary := func(v int) *int { return &v }
		vacancies := []entities.Vacancy{
			{
				Title: "Стажёр-разработчик Go", Description: "Бэкенд внутренних сервисов",
				CompanyID: companies[0].ID, FieldID: &fields[0].ID, IsActive: true,
				SalaryMin: salary(60000), SalaryMax: salary(90000),
				City: "Москва", Address: "ул. Ленина, 1",
				EmploymentType: entities.EmploymentInternship, Experience: entities.ExperienceNone,
				EducationLevel: entities.EducationStudent,
				Schedule:       entities.ScheduleHybrid,
				Requirements:   "Go, SQL", Responsibilities: "Разработка API", Conditions: "ДМС",
				ResponseType: entities.ResponseInternal,
			},
			{
				Title: "Инженер-конструктор", Description: "КБ станкостроения",
				CompanyID: companies[1].ID, FieldID: &fields[2].ID, IsActive: true,
				SalaryMin: salary(90000), SalaryMax: salary(140000),
				City: "Тула", Address: "Заводской проезд, 8",
				EmploymentType: entities.EmploymentFull, Experience: entities.Experience1To3,
				EducationLevel: entities.EducationBachelor,
				Schedule:       entities.ScheduleOffice,
				Requirements:   "КОМПАС-3D", Responsibilities: "Проектирование узлов", Conditions: "Релокация",
				ResponseType: entities.ResponseEmail, ResponseDestination: "cv@prommash.ru",
			},
			{
				Title: "Графический дизайнер", Description: "Фирменные стили",
				CompanyID: companies[2].ID, FieldID: &fields[4].ID, IsActive: false,
				City:           "Санкт-Петербург",
				EmploymentType: entities.EmploymentProject, Experience: entities.ExperienceMoreThan3,
				Schedule:     entities.ScheduleRemote,
				Requirements: "Figma", Responsibilities: "Брендинг", Conditions: "Гибкий график",
				ResponseType: entities.ResponseExternalLink, ResponseDestination: "https://vector.design/jobs",
			},
		}
		if err := tx.Create(&vacancies).Error; err != nil {
			return err
		}

		for _, v := range vacancies {
			snapshot := entities.NewVacancySnapshot(v, entities.HistoryCreated, nil)
			if err := tx.Create(&snapshot).Error; err != nil {
				return fmt.Errorf("failed to snapshot seeded vacancy: %w", err)
			}
		}
		for _, c := range companies {
			snapshot := entities.NewCompanySnapshot(c, entities.HistoryCreated, nil)
			if err := tx.Create(&snapshot).Error; err != nil {
				return fmt.Errorf("failed to snapshot seeded company: %w", err)
			}
		}

		return nil
	})
}
