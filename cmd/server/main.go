package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"registro-service/internal/cache"
	"registro-service/internal/config"
	apphttp "registro-service/internal/http"
	"registro-service/internal/mail"
	"registro-service/internal/service"
	"registro-service/internal/store"
	"registro-service/internal/store/dynamo"
	"registro-service/internal/store/sqlite"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Mail.Sender) == "" {
		logger.Fatalf("mail sender address is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Fatalf("load aws config: %v", err)
	}

	credStore, cleanup, err := buildStore(ctx, cfg, awsCfg, logger)
	if err != nil {
		logger.Fatalf("setup store: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	sender, err := buildSender(cfg, awsCfg, logger)
	if err != nil {
		logger.Fatalf("setup mail: %v", err)
	}

	// Registration and validation keep independent caches, so a password
	// issued by registration is only visible to validation through the
	// durable store.
	registration := service.NewRegistrationService(cache.New(), credStore, sender)
	validation := service.NewValidationService(cache.New(), credStore)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(registration, validation, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func loadAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Store.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}
	return awscfg.LoadDefaultConfig(ctx, loadOpts...)
}

func buildStore(ctx context.Context, cfg config.Config, awsCfg aws.Config, logger *logrus.Logger) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "dynamodb":
		if cfg.Store.Table == "" {
			return nil, nil, fmt.Errorf("store table is required")
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Store.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Store.Endpoint)
			}
		})
		logger.Infof("using dynamodb table %s (region %s)", cfg.Store.Table, cfg.Store.Region)
		return dynamo.New(client, cfg.Store.Table), nil, nil
	case "sqlite":
		db, err := sqlite.Open(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		credStore := sqlite.NewCredentialStore(db)
		if err := credStore.Init(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("init credential store: %w", err)
		}
		logger.Infof("using sqlite store at %s", cfg.Store.Path)
		return credStore, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func buildSender(cfg config.Config, awsCfg aws.Config, logger *logrus.Logger) (mail.Sender, error) {
	switch cfg.Mail.Driver {
	case "ses":
		client := sesv2.NewFromConfig(awsCfg)
		logger.Infof("sending mail via ses as %s", cfg.Mail.Sender)
		return mail.NewSESSender(client, cfg.Mail.Sender), nil
	case "smtp":
		if cfg.Mail.SMTP.Host == "" || cfg.Mail.SMTP.Port == "" {
			return nil, fmt.Errorf("smtp host and port are required")
		}
		logger.Infof("sending mail via smtp %s:%s as %s", cfg.Mail.SMTP.Host, cfg.Mail.SMTP.Port, cfg.Mail.Sender)
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:   cfg.Mail.SMTP.Host,
			Port:   cfg.Mail.SMTP.Port,
			User:   cfg.Mail.SMTP.User,
			Pass:   cfg.Mail.SMTP.Pass,
			Sender: cfg.Mail.Sender,
		}), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}
}
