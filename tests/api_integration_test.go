package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/dkurbatov/career-center/internal/config"
	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func doRequest(t *testing.T, method, path string, payload any, userID uint) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.Itoa(int(userID)))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func vacancyPayload(title string) map[string]any {
	return map[string]any{
		"title":            title,
		"company_id":       1,
		"city":             "Москва",
		"employment_type":  "full",
		"experience":       "no",
		"education_level":  "student",
		"schedule":         "hybrid",
		"requirements":     "Go, SQL",
		"responsibilities": "Разработка сервисов",
		"conditions":       "ДМС, офис у метро",
		"salary_min":       80000,
	}
}

func createVacancy(t *testing.T, title string) entities.Vacancy {
	t.Helper()

	recorder := doRequest(t, http.MethodPost, "/vacancies", vacancyPayload(title), partner.ID)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var vacancy entities.Vacancy
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &vacancy))
	return vacancy
}

func Test_Vacancies_CreateThenGet_ReturnsTrimmedFields(t *testing.T) {

	payload := vacancyPayload("  Go-разработчик  ")
	recorder := doRequest(t, http.MethodPost, "/vacancies", payload, partner.ID)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created entities.Vacancy
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "Go-разработчик", created.Title)
	assert.Equal(t, entities.EducationStudent, created.EducationLevel)
	assert.True(t, created.IsActive)

	recorder = doRequest(t, http.MethodGet, fmt.Sprintf("/vacancies/%d", created.ID), nil, 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched entities.Vacancy
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Go-разработчик", fetched.Title)
}

func Test_Vacancies_Create_WhenRequiredFieldsMissing_ReturnsFieldErrors(t *testing.T) {

	recorder := doRequest(t, http.MethodPost, "/vacancies",
		map[string]any{"company_id": 1}, partner.ID)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response.Errors, "title")
	assert.Contains(t, response.Errors, "city")
	assert.Contains(t, response.Errors, "requirements")
}

func Test_Vacancies_List_WhenEmploymentTypeUnknown_Returns400(t *testing.T) {

	recorder := doRequest(t, http.MethodGet, "/vacancies?employment_type=freelance", nil, 0)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid employment type", recorder.Body.String())
}

func Test_Vacancies_Get_WhenIDNotNumeric_Returns400(t *testing.T) {

	recorder := doRequest(t, http.MethodGet, "/vacancies/abc", nil, 0)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid vacancy ID", recorder.Body.String())
}

func Test_Vacancies_Get_WhenUnknownID_Returns404(t *testing.T) {

	recorder := doRequest(t, http.MethodGet, "/vacancies/99999", nil, 0)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_Vacancies_Archive_IsIdempotent(t *testing.T) {

	vacancy := createVacancy(t, "Аналитик данных")

	path := fmt.Sprintf("/vacancies/%d/archive", vacancy.ID)
	recorder := doRequest(t, http.MethodPost, path, nil, partner.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, http.MethodPost, path, nil, partner.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	var archived entities.Vacancy
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &archived))
	assert.False(t, archived.IsActive)

	recorder = doRequest(t, http.MethodGet, fmt.Sprintf("/vacancies/%d/history", vacancy.ID), nil, partner.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	var history []entities.VacancyHistory
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &history))
	assert.GreaterOrEqual(t, len(history), 3) // create + two archive snapshots
}

func Test_Vacancies_ListMine_WhenAnonymous_ReturnsEmptyPage(t *testing.T) {

	createVacancy(t, "DevOps-инженер")

	recorder := doRequest(t, http.MethodGet, "/vacancies/mine", nil, 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	var page struct {
		Items []entities.Vacancy `json:"items"`
		Total int64              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func Test_Applications_Apply_SecondSubmissionReturns409(t *testing.T) {

	vacancy := createVacancy(t, "Тестировщик")
	path := fmt.Sprintf("/vacancies/%d/apply", vacancy.ID)
	payload := map[string]any{"notes": "Готов к собеседованию"}

	recorder := doRequest(t, http.MethodPost, path, payload, student.ID)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = doRequest(t, http.MethodPost, path, payload, student.ID)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func Test_Applications_Apply_WhenAnonymous_Returns401(t *testing.T) {

	vacancy := createVacancy(t, "Системный администратор")

	recorder := doRequest(t, http.MethodPost,
		fmt.Sprintf("/vacancies/%d/apply", vacancy.ID), map[string]any{}, 0)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func Test_Applications_StatusFlow_PendingToInvited(t *testing.T) {

	vacancy := createVacancy(t, "Продуктовый дизайнер")

	recorder := doRequest(t, http.MethodPost,
		fmt.Sprintf("/vacancies/%d/apply", vacancy.ID), map[string]any{}, student.ID)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var application entities.Application
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &application))
	require.Equal(t, entities.StatusPending, application.Status)

	recorder = doRequest(t, http.MethodPatch,
		fmt.Sprintf("/applications/%d/status", application.ID),
		map[string]any{"status": "invited"}, partner.ID)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &application))
	assert.Equal(t, entities.StatusInvited, application.Status)
}

func Test_Export_ReturnsXlsxAttachmentWithHeaderRow(t *testing.T) {

	createVacancy(t, "Инженер по данным")

	recorder := doRequest(t, http.MethodGet, "/export/vacancies/company/1", nil, partner.ID)
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="vacancies_1.xlsx"`,
		recorder.Header().Get("Content-Disposition"))

	file, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Вакансии")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Название", rows[0][1])
	assert.Greater(t, len(rows), 1)
}

func Test_Export_WhenCompanyUnknown_Returns404(t *testing.T) {

	recorder := doRequest(t, http.MethodGet, "/export/vacancies/company/99999", nil, partner.ID)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func Test_Export_WhenRateExceeded_Returns429(t *testing.T) {

	limited := newRouter(config.ServerConfig{
		Port:                8080,
		ExportRatePerSecond: 0.001,
		ExportBurst:         1,
		AllowedOrigins:      []string{"*"},
	})

	first := httptest.NewRequest(http.MethodGet, "/export/vacancies/company/1", nil)
	first.Header.Set("X-User-ID", strconv.Itoa(int(partner.ID)))
	recorder := httptest.NewRecorder()
	limited.ServeHTTP(recorder, first)
	require.Equal(t, http.StatusOK, recorder.Code)

	second := httptest.NewRequest(http.MethodGet, "/export/vacancies/company/1", nil)
	second.Header.Set("X-User-ID", strconv.Itoa(int(partner.ID)))
	recorder = httptest.NewRecorder()
	limited.ServeHTTP(recorder, second)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}
