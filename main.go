package main

import (
	"fmt"
	"log"

	"plant-stock/config"
	"plant-stock/controllers/idgen"
	"plant-stock/database"
	"plant-stock/jobs"
	"plant-stock/migration"
	"plant-stock/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupPlantRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupSupplierRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupInwardRoutes(app, db)
	routes.SetupOutwardRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupReportRoutes(app, db)

	jobs.NewStockScheduler(db).Start()

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
