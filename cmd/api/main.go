package main

import (
	"os"
	"os/signal"
	"syscall"

	"kosteo-api/internal/ai"
	"kosteo-api/internal/handler"
	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"
	"kosteo-api/internal/service"
	"kosteo-api/pkg/config"
	"kosteo-api/pkg/database"
	"kosteo-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration (reads env, optional .env)
	cfg := config.Load()

	log := logger.New(cfg.Server.Env, cfg.Log.Level)
	defer log.Sync()

	// 2. Database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Venta{}, &model.Compra{}, &model.User{}); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	// 3. Dependency injection (repo -> service -> handler)
	productRepo := repository.NewProductRepo(db)
	ventaRepo := repository.NewVentaRepo(db)
	compraRepo := repository.NewCompraRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(productRepo)
	txService := service.NewTransactionService(ventaRepo, compraRepo)
	userService := service.NewUserService(userRepo)
	dashService := service.NewDashboardService(productRepo, ventaRepo, compraRepo)

	// Without a provider credential the assistant route answers 500 and
	// never makes an outbound call.
	var completer service.Completer
	if cfg.AI.APIKey != "" {
		completer = ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		log.Warn("OPENAI_API_KEY not set, assistant route disabled")
	}
	assistantService := service.NewAssistantService(productRepo, ventaRepo, compraRepo, completer)

	productHandler := handler.NewProductHandler(catalogService, log)
	ventaHandler := handler.NewVentaHandler(txService, log)
	compraHandler := handler.NewCompraHandler(txService, log)
	userHandler := handler.NewUserHandler(userService, log)
	dashHandler := handler.NewDashboardHandler(dashService, log)
	assistantHandler := handler.NewAssistantHandler(assistantService, log)

	// 4. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Kosteo API v1.0",
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		AllowCredentials: cfg.CORS.AllowOrigins != "*",
	}))

	// 5. Routes
	app.Get("/health", handler.Health)

	api := app.Group("/api/v1")

	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/ventas", ventaHandler.GetVentas)
	api.Post("/ventas", ventaHandler.CreateVenta)
	api.Get("/ventas/:id", ventaHandler.GetVenta)
	api.Put("/ventas/:id", ventaHandler.UpdateVenta)
	api.Delete("/ventas/:id", ventaHandler.DeleteVenta)

	api.Get("/compras", compraHandler.GetCompras)
	api.Post("/compras", compraHandler.CreateCompra)
	api.Get("/compras/:id", compraHandler.GetCompra)
	api.Put("/compras/:id", compraHandler.UpdateCompra)
	api.Delete("/compras/:id", compraHandler.DeleteCompra)

	api.Get("/users", userHandler.GetUsers)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Patch("/users/:id", userHandler.PatchUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)
	api.Post("/assistant", assistantHandler.Ask)

	// 6. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}
