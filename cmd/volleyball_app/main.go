package main

import (
	"log"

	"github.com/DerickW126/Volleyball-App/internal/app"
	"github.com/DerickW126/Volleyball-App/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
