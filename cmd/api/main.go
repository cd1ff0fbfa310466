package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"unisovet-console/internal/adapters/genai/gemini"
	"unisovet-console/internal/adapters/storage/snapshot"
	"unisovet-console/internal/config"
	"unisovet-console/internal/platform/logger"
	"unisovet-console/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "unisovet-console",
	})

	var store snapshot.Store
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		store, err = snapshot.OpenPostgres(cfg.DatabaseURL)
	} else {
		store, err = snapshot.OpenSQLite(cfg.SnapshotPath)
	}
	if err != nil {
		log.Fatalf("snapshot store: %v", err)
	}

	gen, err := gemini.NewClient(gemini.Config{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
	})
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	if !gen.IsConfigured() {
		appLog.Warn("GEMINI_API_KEY ausente: assistente vai responder com a mensagem de indisponibilidade", nil)
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	r := router.NewRouter(router.Options{
		Logger:         appLog,
		Store:          store,
		Generator:      gen,
		AllowedOrigins: origins,
	})

	addr := ":" + cfg.HTTPPort
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		// A chamada do assistente ao provedor pode demorar; o write timeout
		// precisa cobrir o timeout do httpclient.
		WriteTimeout: 60 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
