package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	_ "fieldserve/docs"
	"fieldserve/internal/adapter/http/routes"
	appconfig "fieldserve/internal/config"
	"fieldserve/pkg/logger"
)

// @title           Field Service Quotes API
// @version         1.0
// @description     Quote lifecycle, pricing and notifications for field service tenants.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl := logger.New(os.Getenv("APP_ENV"))
	defer zl.Sync()

	routes.Run(cfg, zl)
}
