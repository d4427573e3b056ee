package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/config"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/metrics"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/session"
	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/web"
)

func main() {
	log.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := logging.Init(cfg.App.Env); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logging.Close()

	logging.Info("dashboard starting",
		"environment", cfg.App.Env,
		"backend", cfg.Backend.BaseURL,
	)

	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		store = session.NewRedisStore(cfg.Session.RedisAddr)
		logging.Info("session store: redis", "addr", cfg.Session.RedisAddr)
	default:
		store = session.NewMemoryStore(cfg.Session.TTL)
		logging.Info("session store: memory")
	}
	defer store.Close()

	sessions := session.NewService(store, cfg.Session.TTL)
	reg := metrics.NewRegistry()
	server := web.NewServer(cfg, sessions, reg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go server.RunJanitor(ctx, 15*time.Minute)

	// metrics sit beside the Chi router, not behind it
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", server.Routes())

	addr := ":" + cfg.App.Port
	logging.Info("server starting", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
