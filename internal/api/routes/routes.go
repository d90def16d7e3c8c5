package routes

import (
	"context"

	"sustainability-portal-backend/internal/api/handlers"
	"sustainability-portal-backend/internal/api/middleware"
	"sustainability-portal-backend/internal/auth"
	"sustainability-portal-backend/internal/config"
	"sustainability-portal-backend/internal/logger"
	"sustainability-portal-backend/internal/metrics"
	"sustainability-portal-backend/internal/repository"
	"sustainability-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	log := logger.New()
	reg := metrics.NewRegistry()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(reg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	componentRepo := repository.NewComponentRepository(db)
	mappingRepo := repository.NewMappingRepository(db)
	skuRepo := repository.NewSkuRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	agreementRepo := repository.NewAgreementRepository(db)
	evidenceRepo := repository.NewEvidenceRepository(db)

	// Initialize external collaborators
	var blobs service.BlobStore
	if cfg.GCSBucket == "" {
		log.Warn("GCS bucket not configured, evidence uploads disabled")
	} else {
		gcsStore, err := service.NewGCSBlobStore(context.Background(), cfg.GCSBucket, cfg.GCSCredentialFile)
		if err != nil {
			log.WithError(err).Warn("evidence blob store unavailable, evidence uploads disabled")
		} else {
			blobs = gcsStore
		}
	}
	signing := service.NewHTTPSigningClient(cfg.SigningBaseURL, cfg.SigningAPIKey)
	var notifier service.Notifier
	if cfg.SMTPHost != "" {
		notifier = service.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	}

	// Initialize core domain services
	audit := service.NewAuditRecorder(auditLogRepo, reg)
	resolver := service.NewIdentityResolver(componentRepo)
	validity := service.NewValidityValidator(componentRepo)
	sync := service.NewMappingSynchronizer(mappingRepo, audit, reg)

	componentService := service.NewComponentService(componentRepo, evidenceRepo, auditLogRepo, periodRepo,
		resolver, validity, sync, audit, blobs, validate)
	skuService := service.NewSkuService(skuRepo, mappingRepo, periodRepo, sync, audit, reg, validate)
	contractorService := service.NewContractorService(contractorRepo, audit, validate)
	agreementService := service.NewAgreementService(agreementRepo, contractorRepo, signing, notifier, audit, validate)
	evidenceService := service.NewEvidenceService(evidenceRepo, componentRepo, blobs, audit, validate)
	periodService := service.NewPeriodService(periodRepo)

	// Initialize auth
	authService := auth.NewService(cfg.JWTSecret, 0)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	componentHandler := handlers.NewComponentHandler(componentService)
	skuHandler := handlers.NewSkuHandler(skuService)
	contractorHandler := handlers.NewContractorHandler(contractorService)
	agreementHandler := handlers.NewAgreementHandler(agreementService)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceService)
	periodHandler := handlers.NewPeriodHandler(periodService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Signing provider status callback, authenticated by envelope ID knowledge
	router.POST("/api/v1/agreements/status", agreementHandler.UpdateStatus)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		components := v1.Group("/components")
		{
			components.POST("", componentHandler.AddComponent)
			components.PUT("", componentHandler.UpdateComponent)
			components.POST("/details", componentHandler.ReplaceComponentDetails)
			components.GET("", componentHandler.ListComponents)
			components.GET("/:code", componentHandler.GetComponent)
			components.GET("/:code/audit", componentHandler.GetAuditTrail)
		}

		skus := v1.Group("/skus")
		{
			skus.POST("", skuHandler.CreateSku)
			skus.PUT("", skuHandler.UpdateSku)
			skus.POST("/copy-to-period", skuHandler.CopyToPeriod)
			skus.GET("/:code", skuHandler.GetSku)
		}

		cms := v1.Group("/cms")
		{
			cms.GET("/:cm_code/skus", skuHandler.ListByCM)
			cms.GET("/:cm_code/skus/:sku_code/mappings", skuHandler.GetMappings)
		}

		contractors := v1.Group("/contractors")
		{
			contractors.POST("", contractorHandler.CreateContractor)
			contractors.GET("", contractorHandler.ListContractors)
			contractors.GET("/:cm_code", contractorHandler.GetContractor)
		}

		agreements := v1.Group("/agreements")
		{
			agreements.POST("", agreementHandler.CreateAgreement)
			agreements.GET("", agreementHandler.ListAgreements)
			agreements.POST("/:id/send", agreementHandler.SendForSignature)
		}

		evidence := v1.Group("/evidence")
		{
			evidence.POST("", evidenceHandler.Upload)
			evidence.DELETE("/:id", evidenceHandler.Delete)
		}

		periods := v1.Group("/periods")
		{
			periods.GET("", periodHandler.ListPeriods)
			periods.GET("/active", periodHandler.ActivePeriod)
		}
	}

	return router
}
