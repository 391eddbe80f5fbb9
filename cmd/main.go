package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/dkurbatov/career-center/internal/config"
	"github.com/dkurbatov/career-center/internal/events"
	"github.com/dkurbatov/career-center/internal/handlers"
	"github.com/dkurbatov/career-center/internal/logger"
	"github.com/dkurbatov/career-center/internal/metrics"
	"github.com/dkurbatov/career-center/internal/repositories"
	"github.com/dkurbatov/career-center/internal/services"
	log "github.com/sirupsen/logrus"
)

func subscribeDomainEvents(bus EventBus.Bus) {

	_ = bus.Subscribe(events.VacancyArchivedTopic, func(e events.VacancyArchived) {
		log.Infof("vacancy %d archived", e.Vacancy.ID)
	})
	_ = bus.Subscribe(events.ApplicationSubmittedTopic, func(e events.ApplicationSubmitted) {
		log.Infof("application %d submitted for vacancy %d by user %d",
			e.Application.ID, e.Application.VacancyID, e.Application.UserID)
	})
}

func main() {

	seed := flag.Bool("seed", false, "wipe the store and load sample data, then exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	if *seed {
		if err := repositories.Seed(ctx, dbContext.DB); err != nil {
			log.Fatalf("can't seed database: %v", err)
		}
		log.Info("database seeded")
		return
	}

	vacancies := repositories.NewVacanciesRepository(dbContext.DB)
	companies := repositories.NewCompaniesRepository(dbContext.DB)
	fields := repositories.NewCachedFields(repositories.NewFieldsRepository(dbContext.DB))
	fieldsList := repositories.NewFieldsRepository(dbContext.DB)
	users := repositories.NewUsersRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	eventRows := repositories.NewEventsRepository(dbContext.DB)

	bus := EventBus.New()
	subscribeDomainEvents(bus)

	vacancyService := services.NewVacancyService(vacancies, fields, companies, bus)
	companyService := services.NewCompanyService(companies)
	applicationService := services.NewApplicationService(applications, vacancies, bus)
	eventService := services.NewEventService(eventRows)
	exportService := services.NewExportService(vacancies, companies)

	router := handlers.NewRouter(handlers.Handlers{
		Vacancies:    handlers.NewVacancyHandler(vacancyService),
		Companies:    handlers.NewCompanyHandler(companyService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Events:       handlers.NewEventHandler(eventService),
		Export:       handlers.NewExportHandler(exportService),
		Fields:       handlers.NewFieldHandler(fieldsList),
		Users:        users,
	}, cfg.Server)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
