package handlers

import (
	"strconv"

	"github.com/dkurbatov/career-center/internal/config"
	"github.com/dkurbatov/career-center/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Vacancies    *VacancyHandler
	Companies    *CompanyHandler
	Applications *ApplicationHandler
	Events       *EventHandler
	Export       *ExportHandler
	Fields       *FieldHandler
	Users        userLookup
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RequestsCounter.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

func NewRouter(h Handlers, cfg config.ServerConfig) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestMetrics())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-User-ID"}
	router.Use(cors.New(corsConfig))

	router.Use(Identity(h.Users))

	vacancies := router.Group("/vacancies")
	{
		vacancies.GET("", h.Vacancies.List)
		vacancies.GET("/mine", h.Vacancies.ListMine)
		vacancies.GET("/:id", h.Vacancies.Get)
		vacancies.POST("", h.Vacancies.Create)
		vacancies.PUT("/:id", h.Vacancies.Update)
		vacancies.POST("/:id/archive", h.Vacancies.Archive)
		vacancies.DELETE("/:id", h.Vacancies.Delete)
		vacancies.GET("/:id/history", h.Vacancies.History)
		vacancies.POST("/:id/apply", h.Applications.Apply)
		vacancies.GET("/:id/applications", h.Applications.ListForVacancy)
	}

	companies := router.Group("/companies")
	{
		companies.GET("", h.Companies.List)
		companies.GET("/:id", h.Companies.Get)
		companies.POST("", h.Companies.Create)
		companies.PUT("/:id", h.Companies.Update)
		companies.DELETE("/:id", h.Companies.Delete)
		companies.GET("/:id/history", h.Companies.History)
	}

	router.PATCH("/applications/:id/status", h.Applications.UpdateStatus)

	events := router.Group("/events")
	{
		events.GET("", h.Events.List)
		events.GET("/:id", h.Events.Get)
		events.POST("", h.Events.Create)
		events.DELETE("/:id", h.Events.Delete)
	}

	router.GET("/fields", h.Fields.List)

	export := router.Group("/export")
	if cfg.ExportRatePerSecond > 0 {
		export.Use(RateLimit(cfg.ExportRatePerSecond, cfg.ExportBurst))
	}
	export.GET("/vacancies/company/:company_id", h.Export.CompanyVacancies)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
