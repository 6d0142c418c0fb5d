package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"magasin/config"
	"magasin/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatal("Failed to start application: ", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := application.Close(ctx); err != nil {
			log.Printf("Error closing application: %v", err)
		}
	}()

	log.Println("Server is running on port", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, application.Router))
}
