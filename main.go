package main

import (
	"fmt"
	"os"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"ferias-engine/internal/config"
	"ferias-engine/internal/engine"
	"ferias-engine/internal/handler"
	"ferias-engine/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Environment: cfg.Environment,
		LogLevel:    cfg.LogLevel,
		ServiceName: "ferias-engine",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	e, err := engine.New(log, cfg.CacheSize)
	if err != nil {
		log.Fatal("engine setup failed", zap.Error(err))
	}
	h := handler.New(e, log)

	log.Info("ferias engine starting", zap.String("port", cfg.Port), zap.Int("cache_size", cfg.CacheSize))
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Serve); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
