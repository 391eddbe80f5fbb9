package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/metrics"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Вакансии"

// Column order is a fixed contract of the export document.
var exportHeaders = []string{
	"ID",
	"Название",
	"Компания",
	"Индустрия",
	"Город",
	"Адрес",
	"Тип трудоустройства",
	"Опыт работы",
	"График работы",
	"Мин. зарплата",
	"Макс. зарплата",
	"Создана",
}

type exportVacancyRepository interface {
	ActiveByCompany(ctx context.Context, companyID uint) ([]entities.Vacancy, error)
}

type ExportService struct {
	vacancies exportVacancyRepository
	companies companyLookup
}

func NewExportService(vacancies exportVacancyRepository, companies companyLookup) *ExportService {
	return &ExportService{vacancies: vacancies, companies: companies}
}

// CompanyVacancies renders the company's active vacancies as an xlsx
// document. A company without active vacancies still yields a valid sheet
// with the header row only.
func (s *ExportService) CompanyVacancies(ctx context.Context, companyID uint) (*bytes.Buffer, error) {

	started := time.Now()

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}

	vacancies, err := s.vacancies.ActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err = file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}
	if err = file.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}

	rows := lo.Map(vacancies, func(v entities.Vacancy, _ int) []any {
		return exportRow(v, company.Name)
	})
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err = file.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	metrics.ExportDuration.Observe(time.Since(started).Seconds())
	metrics.ExportedVacanciesCounter.Add(float64(len(vacancies)))
	return buf, nil
}

// exportRow expands enum codes to their display labels; unset salaries
// render as empty cells.
func exportRow(v entities.Vacancy, companyName string) []any {

	industry := ""
	if v.Company != nil {
		industry = v.Company.Industry
	}

	return []any{
		v.ID,
		v.Title,
		companyName,
		industry,
		v.City,
		v.Address,
		enumCell(string(v.EmploymentType), v.EmploymentType.Label()),
		enumCell(string(v.Experience), v.Experience.Label()),
		enumCell(string(v.Schedule), v.Schedule.Label()),
		salaryCell(v.SalaryMin),
		salaryCell(v.SalaryMax),
		v.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func enumCell(code, label string) string {
	if code == "" {
		return ""
	}
	return label
}

func salaryCell(salary *int) any {
	if salary == nil {
		return ""
	}
	return *salary
}
