package main

import (
	"context"
	"log"
	"os"
	"time"

	"troybbq/internal/auth"
	"troybbq/internal/catalog"
	"troybbq/internal/db"
	"troybbq/internal/distance"
	"troybbq/internal/middleware"
	"troybbq/internal/notify"
	"troybbq/internal/quote"
	"troybbq/internal/reporting"
	"troybbq/internal/settings"
	"troybbq/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:4321"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	settingsRepo := settings.NewPostgresRepository(pgDB)
	quoteRepo := quote.NewPostgresRepository(pgDB)
	emailRepo := notify.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	catalogService := catalog.NewService(catalogRepo, r2Client)
	settingsService := settings.NewService(settingsRepo)

	notifyService := notify.NewService(emailRepo, quoteRepo, notify.LogSender{})

	quoteService := quote.NewService(
		quoteRepo,
		catalogService,
		settingsService,
		distance.NewHeuristic(),
		notifyService,
	)

	reportingService := reporting.NewService(pgDB)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	settingsHandler := settings.NewHandler(settingsService)
	quoteHandler := quote.NewHandler(quoteService)
	reportingHandler := reporting.NewHandler(reportingService)

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	r.GET("/menu/items", catalogHandler.ListItems)
	r.GET("/menu/addons", catalogHandler.ListAddOns)
	r.GET("/quotes/address-check", quoteHandler.CheckAddress)
	r.POST("/quotes/estimate", quoteHandler.Estimate)

	// ───────────────────────── QUOTE ROUTES ─────────────────────────
	quotes := r.Group("/quotes")
	quotes.Use(middleware.AuthMiddleware())
	{
		quotes.POST("", quoteHandler.Create)
		quotes.GET("/mine", quoteHandler.ListMine)
		quotes.GET("/:id", quoteHandler.Get)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		// Catalog
		admin.POST("/items", catalogHandler.SaveItem)
		admin.DELETE("/items/:ref", catalogHandler.DeleteItem)
		admin.POST("/items/:ref/image", catalogHandler.UploadItemImage)
		admin.POST("/addons", catalogHandler.SaveAddOn)
		admin.PATCH("/addons/:ref/active", catalogHandler.SetAddOnActive)

		// Business rules
		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)

		// Quote review
		admin.GET("/quotes/pending", quoteHandler.ListPending)
		admin.POST("/quotes/:id/approve", quoteHandler.Approve)
		admin.POST("/quotes/:id/reject", quoteHandler.Reject)

		// Dashboard
		admin.GET("/reports/summary", reportingHandler.Get)
	}

	// ───────────────────────── EMAIL WORKER ─────────────────────────
	go notifyService.RunWorker(context.Background())

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
