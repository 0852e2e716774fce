package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/webui/config"
	"github.com/Astemirdum/bookreview-service/webui/internal/client"
	"github.com/Astemirdum/bookreview-service/webui/internal/handler"
	"github.com/Astemirdum/bookreview-service/webui/internal/server"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "webui")
	api := client.New(cfg.BookAPI.URL, cfg.BookAPI.Timeout, log)

	h := handler.New(api, log,
		handler.WithReplaceReviews(cfg.ReviewAppendMode == config.ReviewAppendReplace),
		handler.WithSessionTTL(cfg.Session.TTL),
		handler.WithMaxSessions(cfg.Session.MaxSessions),
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("api", cfg.BookAPI.URL))
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

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
