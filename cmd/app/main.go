package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/savioruz/futsal/config"
	"github.com/savioruz/futsal/internal/app"

	_ "time/tzdata"
)

func main() {
	// Configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
