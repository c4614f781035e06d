package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dropout-risk-dashboard/config"
	"dropout-risk-dashboard/database"
	FiberApp "dropout-risk-dashboard/fiber"
	"dropout-risk-dashboard/route"
)

func main() {
	// 1. Load .env file
	config.LoadEnv()

	// 2. Connect to PostgreSQL and make sure the schema exists
	database.ConnectPostgres()
	defer database.PostgresDB.Close()

	if err := database.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// 3. Setup Fiber app
	app := FiberApp.SetupFiber()

	// 4. Setup routes
	route.SetupRoutes(app, database.PostgresDB)

	// 5. Start server
	port := config.Get("PORT", "8080")

	go func() {
		log.Printf("Server running on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
