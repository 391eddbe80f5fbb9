package services

import (
	"context"
	"testing"
	"time"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockExportVacancies struct {
	mock.Mock
}

func (m *mockExportVacancies) ActiveByCompany(ctx context.Context, companyID uint) ([]entities.Vacancy, error) {
	args := m.Called(ctx, companyID)
	vacancies, _ := args.Get(0).([]entities.Vacancy)
	return vacancies, args.Error(1)
}

func readRows(t *testing.T, service *ExportService, companyID uint) [][]string {

	buf, err := service.CompanyVacancies(context.Background(), companyID)
	require.NoError(t, err)

	file, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := file.GetRows("Вакансии")
	require.NoError(t, err)
	return rows
}

func Test_Export_WhenCompanyMissing_ShouldReturnNotFound(t *testing.T) {

	vacancies := &mockExportVacancies{}
	companies := &mockCompanies{}
	companies.On("GetByID", mock.Anything, uint(8)).Return(nil, nil)

	service := NewExportService(vacancies, companies)
	_, err := service.CompanyVacancies(context.Background(), 8)

	assert.ErrorIs(t, err, ErrNotFound)
	vacancies.AssertNotCalled(t, "ActiveByCompany", mock.Anything, mock.Anything)
}

func Test_Export_WhenNoActiveVacancies_ShouldProduceHeaderOnlySheet(t *testing.T) {

	vacancies := &mockExportVacancies{}
	companies := &mockCompanies{}
	companies.On("GetByID", mock.Anything, uint(1)).Return(&entities.Company{ID: 1, Name: "ТехноСофт"}, nil)
	vacancies.On("ActiveByCompany", mock.Anything, uint(1)).Return([]entities.Vacancy{}, nil)

	service := NewExportService(vacancies, companies)
	rows := readRows(t, service, 1)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"ID", "Название", "Компания", "Индустрия", "Город", "Адрес",
		"Тип трудоустройства", "Опыт работы", "График работы",
		"Мин. зарплата", "Макс. зарплата", "Создана",
	}, rows[0])
}

func Test_Export_ExpandsEnumCodesToLabels(t *testing.T) {

	company := &entities.Company{ID: 2, Name: "ПромМаш", Industry: "Машиностроение"}
	vacancy := entities.Vacancy{
		ID:             11,
		Title:          "Инженер",
		Company:        company,
		City:           "Тула",
		Address:        "Заводской проезд, 8",
		EmploymentType: entities.EmploymentFull,
		Experience:     entities.Experience1To3,
		Schedule:       entities.ScheduleOffice,
		SalaryMin:      intPtr(90000),
		CreatedAt:      time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
	}

	vacancies := &mockExportVacancies{}
	companies := &mockCompanies{}
	companies.On("GetByID", mock.Anything, uint(2)).Return(company, nil)
	vacancies.On("ActiveByCompany", mock.Anything, uint(2)).Return([]entities.Vacancy{vacancy}, nil)

	service := NewExportService(vacancies, companies)
	rows := readRows(t, service, 2)

	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, "11", row[0])
	assert.Equal(t, "Инженер", row[1])
	assert.Equal(t, "ПромМаш", row[2])
	assert.Equal(t, "Машиностроение", row[3])
	assert.Equal(t, "Полная занятость", row[6])
	assert.Equal(t, "1–3 года", row[7])
	assert.Equal(t, "Офис", row[8])
	assert.Equal(t, "90000", row[9])
	assert.Equal(t, "2024-05-10 09:30", row[11])
}

func Test_Export_UnsetEnumAndSalary_RenderEmptyCells(t *testing.T) {

	company := &entities.Company{ID: 3, Name: "Solo"}
	vacancy := entities.Vacancy{ID: 12, Title: "Курьер", Company: company, City: "Москва",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	vacancies := &mockExportVacancies{}
	companies := &mockCompanies{}
	companies.On("GetByID", mock.Anything, uint(3)).Return(company, nil)
	vacancies.On("ActiveByCompany", mock.Anything, uint(3)).Return([]entities.Vacancy{vacancy}, nil)

	service := NewExportService(vacancies, companies)
	rows := readRows(t, service, 3)

	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, "", row[6])
	assert.Equal(t, "", row[7])
	assert.Equal(t, "", row[8])
}
