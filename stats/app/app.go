package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/postgres"
	"github.com/Astemirdum/bookreview-service/stats/config"
	"github.com/Astemirdum/bookreview-service/stats/internal/handler"
	"github.com/Astemirdum/bookreview-service/stats/internal/repository"
	"github.com/Astemirdum/bookreview-service/stats/internal/server"
	"github.com/Astemirdum/bookreview-service/stats/internal/service"
	"github.com/Astemirdum/bookreview-service/stats/migrations"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "stats")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	svc := service.NewService(repo, log)

	if err = kafka.CreateTopics(cfg.Kafka, cfg.Kafka.Topic); err != nil {
		return errors.Wrap(err, "kafka.CreateTopics")
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.SaveEvent, log), log, cfg.Kafka.Topic)
	})
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr",
				net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Stop(closeCtx); err != nil {
			log.DPanic("srv.Stop", zap.Error(err))
		}
		return consumer.Close()
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}
