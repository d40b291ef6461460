package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	"versenotes/internal/app"
	"versenotes/internal/config"
	"versenotes/internal/logging"
	"versenotes/internal/platform/database"
	rabbitmqClient "versenotes/internal/platform/rabbitmq"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	MQConn *amqp.Connection
	Events app.EventPublisher
	Policy app.AccessPolicy

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	db, err := database.Open(ctx, DatabaseOptions(cfg.Database))
	if err != nil {
		return nil, err
	}
	// Schema errors are logged inside InitSchema; the server still starts.
	_ = database.InitSchema(ctx, db)

	a := &App{
		Config:    cfg,
		DB:        db,
		Events:    app.NopPublisher{},
		Policy:    app.OpenAccess{},
		StartedAt: time.Now(),
	}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			logging.Error().Err(err).Msg("rabbitmq unavailable, domain events disabled")
		} else {
			a.MQConn = conn
			a.Events = rabbitmqClient.NewEventPublisher(conn, cfg.RabbitMQ.EventsQueue)
		}
	}

	return a, nil
}

func DatabaseOptions(cfg config.DatabaseConfig) database.Options {
	return database.Options{
		Driver:          cfg.Driver,
		DSN:             cfg.URL,
		MaxIdleConns:    cfg.MaxIdleConns,
		MaxOpenConns:    cfg.MaxOpenConns,
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
		SlowThreshold:   time.Duration(cfg.SlowQueryMillis) * time.Millisecond,
	}
}

func (a *App) Close() error {
	var closeErr error
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		if err := database.Close(a.DB); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
