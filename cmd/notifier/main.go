package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/alert"
	jobhandler "github.com/medremind/appointment-notifier/internal/api/handlers/job"
	"github.com/medremind/appointment-notifier/internal/api/router"
	"github.com/medremind/appointment-notifier/internal/api/server"
	"github.com/medremind/appointment-notifier/internal/attachment"
	"github.com/medremind/appointment-notifier/internal/config"
	"github.com/medremind/appointment-notifier/internal/dispatch"
	"github.com/medremind/appointment-notifier/internal/metrics"
	jobmsg "github.com/medremind/appointment-notifier/internal/rabbitmq/handlers/job"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
	jobrepo "github.com/medremind/appointment-notifier/internal/repository/job"
	recordrepo "github.com/medremind/appointment-notifier/internal/repository/record"
	jobsvc "github.com/medremind/appointment-notifier/internal/service/job"
	"github.com/medremind/appointment-notifier/internal/worker"
	"github.com/medremind/appointment-notifier/pkg/email"
	"github.com/medremind/appointment-notifier/pkg/line"
	"github.com/medremind/appointment-notifier/pkg/sms"
	"github.com/medremind/appointment-notifier/pkg/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	metrics.Register()

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Str("timezone", cfg.Scheduler.Timezone).Msg("failed to load reference timezone")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDNSs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDNSs = append(slaveDNSs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDNSs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	jobs := jobrepo.NewRepository(db)
	records := recordrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	mailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	alerter := alert.New(mailClient, cfg.Alerts.To)

	storageClient := storage.NewClient(cfg.Storage.BaseURL, cfg.Storage.ProbeTimeout)
	resolver := attachment.NewResolver(records, storageClient, cfg.Storage.Prefix, cfg.Scheduler.MaxAttachments)

	pushers := map[string]dispatch.Pusher{
		"line": line.NewClient(cfg.Line.Token, cfg.Scheduler.DispatchTimeout),
		"sms":  sms.NewClient(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.From),
	}
	dispatcher := dispatch.NewDispatcher(pushers, cfg.Scheduler.DispatchTimeout)

	service := jobsvc.NewService(jobs, records, rdb, alerter, loc, cfg.Scheduler.MaxAttempts)

	messageHandler := jobmsg.NewHandler(service, resolver, dispatcher)
	notifier := worker.NewNotifier(q, messageHandler, service)

	scheduler := worker.NewScheduler(jobs, q, service, worker.SchedulerConfig{
		PollInterval:  cfg.Scheduler.PollInterval,
		SweepInterval: cfg.Scheduler.SweepInterval,
		Lease:         cfg.Scheduler.Lease,
		BatchSize:     cfg.Scheduler.BatchSize,
		DiscoverySpec: cfg.Scheduler.DiscoverySpec,
	})

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go scheduler.Run(ctx, cfg.Retry)

	handler := jobhandler.NewHandler(service, cfg)
	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
