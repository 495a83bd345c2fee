// @title         SpendSmart API
// @version       1.0
// @description   Personal finance tracking backend: signup/login with JWT bearer authentication, budget goals, incomes and transactions stored in MongoDB.
// @schemes       http
// @host          localhost:4000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token in the form "Bearer <JWT>".
package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "spendsmart/docs"

	apihttp "spendsmart/api/http"
	"spendsmart/api/http/handlers"
	"spendsmart/pkg/auth"
	"spendsmart/pkg/config"
	"spendsmart/pkg/finance"
	"spendsmart/pkg/health"
	"spendsmart/pkg/health/checkers"
	mongorepo "spendsmart/pkg/repository/mongodb"
	"spendsmart/pkg/security/jwt"
	"spendsmart/pkg/storage/mongodb"
)

func main() {
	// Load configuration from env/.env; a missing MONGO_URI or JWT_SECRET
	// is fatal.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Connect to MongoDB
	client, err := mongodb.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongodb disconnect: %v", err)
		}
	}()

	// Wire dependencies (Clean Architecture)
	userRepo, err := mongorepo.NewUserRepository(client, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("init user repo: %v", err)
	}
	goalRepo := mongorepo.NewGoalRepository(client, cfg.MongoDBName)
	incomeRepo := mongorepo.NewIncomeRepository(client, cfg.MongoDBName)
	txRepo := mongorepo.NewTransactionRepository(client, cfg.MongoDBName)

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	accountUC := auth.NewAccountService(userRepo, goalRepo, incomeRepo, txRepo, jwtGen)
	financeUC := finance.NewService(goalRepo, incomeRepo, txRepo)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewMongoChecker(client))

	authHandler := handlers.NewAuthHandler(accountUC)
	userHandler := handlers.NewUserHandler(accountUC, financeUC)
	healthHandler := handlers.NewHealthHandler(readiness)

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(jwtGen)

	// Register routes
	apihttp.Register(app, authHandler, userHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
