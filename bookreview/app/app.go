package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookreview-service/bookreview/config"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/events"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/handler"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/repository"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/server"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/pkg/kafka"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/mongo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookreview")
	db, err := mongo.NewMongoDB(context.Background(), &cfg.Database)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db.Collection(cfg.Database.Collection), log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	publisher := events.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		if err = kafka.CreateTopics(cfg.Kafka, cfg.Kafka.Topic); err != nil {
			log.Fatal("kafka.CreateTopics", zap.Error(err))
		}
		producer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewSyncProducer", zap.Error(err))
		}
		defer producer.Close()
		publisher = events.NewPublisher(producer, cfg.Kafka.Topic, log)
	}
	svc := service.NewService(repo, publisher, log)

	h := handler.New(svc, log,
		handler.WithStrictValidation(cfg.StrictValidation()),
		handler.WithRateLimit(rate.Limit(cfg.Server.RateLimit)),
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = mongo.Close(closeCtx, db); err != nil {
		log.Error("mongo.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
