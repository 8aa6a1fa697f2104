package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/swaggo/swag" // 导入 swag

	"ai_ecommerce_assistant/config"
	_ "ai_ecommerce_assistant/docs" // 导入 swagger 文档
	"ai_ecommerce_assistant/handlers"
	"ai_ecommerce_assistant/logger"
	"ai_ecommerce_assistant/scheduler"
	"ai_ecommerce_assistant/services"
)

func main() {
	cfg := config.Load()

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	if err := cfg.Validate(); err != nil {
		logger.Error("配置校验失败", "error", err)
		os.Exit(1)
	}

	stores := services.NewStores()
	assistant := services.NewAssistant(cfg, stores)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handlers.RegisterRoutes(r, cfg, assistant)

	// start cron
	scheduler.Start(cfg, assistant)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Timeouts.RequestSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Timeouts.ResponseSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Timeouts.IdleSec) * time.Second,
	}

	logger.Info("服务器启动", "address", cfg.Server.Addr)
	logger.Info("Swagger文档可访问", "url", fmt.Sprintf("http://%s/swagger/index.html", cfg.Server.Addr))
	log.Fatal(server.ListenAndServe())
}
