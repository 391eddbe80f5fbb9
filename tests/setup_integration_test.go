package tests

import (
	"context"
	"os"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/dkurbatov/career-center/internal/config"
	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/dkurbatov/career-center/internal/handlers"
	"github.com/dkurbatov/career-center/internal/repositories"
	"github.com/dkurbatov/career-center/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	dbCtx  *repositories.DbContext
	router *gin.Engine

	partner = entities.User{Email: "partner@techvector.ru", FullName: "Анна Смирнова", Role: entities.RolePartner}
	student = entities.User{Email: "student@example.com", FullName: "Иван Петров", Role: entities.RoleStudent}
)

func upEnvironment() {

	os.Setenv("DB_CONNECTION_STRING", "testdatabase.db")
	os.Setenv("EXPORT_RATE_PER_SECOND", "1000")
	cfg := config.Get()

	var err error
	dbCtx, err = repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("could not create db context: %s", err)
	}

	err = dbCtx.Migrate()
	if err != nil {
		log.Fatalf("could not migrate db: %s", err)
	}

	ctx := context.Background()

	fields := repositories.NewFieldsRepository(dbCtx.DB)
	if err = fields.Create(ctx, &entities.FieldOfStudy{Name: "Информационные технологии"}); err != nil {
		log.Fatalf("could not add field of study: %s", err)
	}

	companies := repositories.NewCompaniesRepository(dbCtx.DB)
	company := entities.Company{Name: "ТехВектор", Industry: "Информационные технологии"}
	if err = companies.Create(ctx, &company, nil); err != nil {
		log.Fatalf("could not add company: %s", err)
	}

	users := repositories.NewUsersRepository(dbCtx.DB)
	partner.CompanyID = &company.ID
	if err = users.Create(ctx, &partner); err != nil {
		log.Fatalf("could not add partner: %s", err)
	}
	if err = users.Create(ctx, &student); err != nil {
		log.Fatalf("could not add student: %s", err)
	}

	router = newRouter(cfg.Server)
}

// newRouter wires the full stack the same way main does.
func newRouter(cfg config.ServerConfig) *gin.Engine {

	vacancies := repositories.NewVacanciesRepository(dbCtx.DB)
	companies := repositories.NewCompaniesRepository(dbCtx.DB)
	cachedFields := repositories.NewCachedFields(repositories.NewFieldsRepository(dbCtx.DB))
	fields := repositories.NewFieldsRepository(dbCtx.DB)
	users := repositories.NewUsersRepository(dbCtx.DB)
	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	eventRows := repositories.NewEventsRepository(dbCtx.DB)

	bus := EventBus.New()

	return handlers.NewRouter(handlers.Handlers{
		Vacancies:    handlers.NewVacancyHandler(services.NewVacancyService(vacancies, cachedFields, companies, bus)),
		Companies:    handlers.NewCompanyHandler(services.NewCompanyService(companies)),
		Applications: handlers.NewApplicationHandler(services.NewApplicationService(applications, vacancies, bus)),
		Events:       handlers.NewEventHandler(services.NewEventService(eventRows)),
		Export:       handlers.NewExportHandler(services.NewExportService(vacancies, companies)),
		Fields:       handlers.NewFieldHandler(fields),
		Users:        users,
	}, cfg)
}

func downEnvironment() {
	_ = dbCtx.Close()
	_ = os.Remove("testdatabase.db")
}

func TestMain(m *testing.M) {

	err := os.Chdir("../") //project root to resolve correctly relative paths in code
	if err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	upEnvironment()

	code := m.Run()

	downEnvironment()

	os.Exit(code)
}
