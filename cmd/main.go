package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ExtratoAnalytics/internal/appmanager"
)

func main() {
	// Load .env for local dev; absent in deployed environments
	_ = godotenv.Load(".env")

	manager := appmanager.NewAppManager()

	configPath := os.Getenv("SERVICES_CONFIG")
	if configPath == "" {
		configPath = "services.yaml"
	}
	servicesCfg, err := appmanager.LoadServiceSequence(configPath)
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	manager.AutoRegisterServices(servicesCfg)

	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
