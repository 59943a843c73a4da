package bootstrap

import (
	"context"
	"time"

	"ara-be/internal/config"
	"ara-be/internal/controller"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/pkg/mailer"
	"ara-be/internal/repository/cache"
	"ara-be/internal/repository/memory"
	"ara-be/internal/repository/unitofwork"
	"ara-be/internal/service"

	pktNats "ara-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const projectSettingCacheTTL = 5 * time.Minute

type Container struct {
	// Controllers
	FunctionalityController controller.IFunctionalityController
	SourceController        controller.ISourceController
	ScenarioController      controller.IScenarioController
	CoverageController      controller.ICoverageController
	SettingController       controller.ISettingController
	ProblemController       controller.IProblemController

	// Background services, started by main.go
	ConsumerService service.IConsumerService
	CoverageService service.ICoverageService
	NatsSubscriber  *pktNats.Subscriber

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. In-process bus for coverage counter refreshes
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Infrastructure
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS publisher, events are dropped", map[string]interface{}{"error": err.Error()})
	} else {
		eventPublisher = natsPub
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS subscriber", map[string]interface{}{"error": err.Error()})
	}

	var summaryCache cache.ICoverageSummaryCache
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis, coverage summaries are not cached", map[string]interface{}{"error": err.Error()})
	} else {
		summaryCache = cache.NewCoverageSummaryCache(rdb, cfg.Coverage.SummaryCacheTTL)
	}

	settingCache := memory.NewProjectSettingCache(projectSettingCacheTTL)

	// 4. Services
	eventPublisherService := service.NewEventPublisherService(eventPublisher, sysLogger)
	publisherService := service.NewPublisherService(cfg.Coverage.Topic, pubSub)

	coverageService := service.NewCoverageService(uowFactory, summaryCache, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Coverage.Topic,
		uowFactory,
		coverageService,
		sysLogger,
	)

	functionalityService := service.NewFunctionalityService(
		uowFactory,
		publisherService,
		eventPublisherService,
		coverageService,
		sysLogger,
	)
	sourceService := service.NewSourceService(uowFactory, sysLogger)
	scenarioService := service.NewScenarioService(uowFactory, sysLogger)

	defectService := service.NewDefectService(eventPublisherService, sysLogger)
	settingService := service.NewSettingService(
		uowFactory,
		settingCache,
		defectService,
		cfg.App.ExecutionsFolder,
		sysLogger,
	)
	problemService := service.NewProblemService(uowFactory, settingService, sysLogger)
	reportService := service.NewReportService(coverageService, settingService, emailService, sysLogger)

	// 5. Controllers
	return &Container{
		FunctionalityController: controller.NewFunctionalityController(functionalityService),
		SourceController:        controller.NewSourceController(sourceService),
		ScenarioController:      controller.NewScenarioController(scenarioService),
		CoverageController:      controller.NewCoverageController(coverageService, reportService),
		SettingController:       controller.NewSettingController(settingService),
		ProblemController:       controller.NewProblemController(problemService),

		ConsumerService: consumerService,
		CoverageService: coverageService,
		NatsSubscriber:  natsSub,

		Logger: sysLogger,
	}
}
