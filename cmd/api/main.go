package main

import (
	"log"

	"github.com/joho/godotenv"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/config"
	"assessment-backend/internal/server"
	"assessment-backend/internal/shared/telemetry"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	r := server.NewRouter(cfg, cat)
	addr := server.Addr(cfg.Port)

	telemetry.Info("server.start", map[string]any{
		"addr":            addr,
		"env":             cfg.Env,
		"catalog_version": cat.Version,
		"questions":       cat.QuestionCount(),
	})
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
