package main

import (
	"context"
	"log"

	"github.com/sahanr/inkpot/internal/app"
	"github.com/sahanr/inkpot/internal/config"
)

func main() {
	cfg := config.Load()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("inkpot: listening on port %d", cfg.Port)
	if err := a.Server.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
