package main

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/contracts"
	"directory-service/internal/app/delivery/http/controllers"
	"directory-service/internal/app/delivery/http/middlewares"
	"directory-service/internal/app/delivery/http/routers"
	"directory-service/internal/app/drivers/database"
	"directory-service/internal/app/drivers/logger"
	"directory-service/internal/app/drivers/messaging"
	"directory-service/internal/app/services/collaborator"
	"directory-service/internal/app/services/core/directory"
	"directory-service/internal/app/services/shared/jwtmanager"
	"directory-service/internal/app/services/shared/locker"
	"directory-service/internal/app/services/shared/notifier"
	"directory-service/internal/app/services/shared/redis"
	"directory-service/internal/pkg/constvars"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		AccessLogger:   logger.NewAccessLogger(internalConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Directory.LockDriver == constvars.LockDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.Directory.Source == constvars.DirectorySourceMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Host != "" && internalConfig.RabbitMQ.NotificationQueue != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		bootstrap.Logger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Collaborator
	collaboratorClient := collaborator.NewCollaboratorClient(internalConfig.Collaborator, bootstrap.Logger)

	var directorySource contracts.DirectorySource = collaboratorClient
	if bootstrap.MongoDB != nil {
		db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
		directorySource = collaborator.NewMongoDirectorySource(db, bootstrap.Logger)
	}

	// Submission lock
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, bootstrap.Logger)
	} else {
		lockerService = locker.NewMemoryLockService()
	}

	// Notifications
	var publisher contracts.NotificationPublisher
	if bootstrap.RabbitMQ != nil {
		rabbitMQNotifier, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, internalConfig.RabbitMQ.NotificationQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
		publisher = rabbitMQNotifier
	}

	// Directory
	collaboratorTimeout := time.Duration(internalConfig.Collaborator.RequestTimeoutInSeconds) * time.Second
	registry := directory.NewRegistry(internalConfig.Directory.MaxNotificationsPerView)
	loader := directory.NewLoader(directorySource, publisher, collaboratorTimeout, bootstrap.Logger)
	directoryUsecase := directory.NewDirectoryUsecase(registry, loader, collaboratorClient, lockerService, publisher, internalConfig, bootstrap.Logger)
	directoryController := controllers.NewDirectoryController(bootstrap.Logger, directoryUsecase, collaboratorTimeout+5*time.Second)

	sweeper := directory.NewSweeper(
		bootstrap.Logger,
		registry,
		internalConfig.Directory.ViewSweepCronSpec,
		time.Duration(internalConfig.Directory.ViewIdleTimeoutInMinutes)*time.Minute,
	)
	sweeper.Start()
	bootstrap.WorkerStop = sweeper.Stop
	bootstrap.RegistryClose = registry.Close

	// Middlewares
	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.Logger, bootstrap.AccessLogger, middlewares, directoryController)
	return nil
}
