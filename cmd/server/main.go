package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/api/routes"
	"Glimpse/internal/config"
	"Glimpse/internal/core/comments"
	"Glimpse/internal/core/feed"
	"Glimpse/internal/core/graph"
	"Glimpse/internal/core/interactions"
	"Glimpse/internal/core/notifications"
	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
	"Glimpse/internal/db/migrations"
	postgresRepo "Glimpse/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations from the embedded filesystem
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Repositories
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	followRepo := postgresRepo.NewFollowRepository(db)
	interactionRepo := postgresRepo.NewInteractionRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)
	feedRepo := postgresRepo.NewFeedRepository(db)

	// Cross-cutting resolvers: viewer state comes from the interaction
	// ledger, author summaries from the user table
	viewerStateResolver := interactions.NewViewerStateResolver(interactionRepo)
	authorResolver := postgresRepo.NewAuthorResolver(db)

	// Services
	userService := users.NewService(userRepo, followRepo, logger)
	postService := posts.NewService(postRepo, authorResolver, viewerStateResolver, logger)
	graphService := graph.NewService(followRepo, logger)
	interactionService := interactions.NewService(interactionRepo, logger)
	commentService := comments.NewService(commentRepo, logger)
	notificationService := notifications.NewService(notificationRepo, logger)
	feedService := feed.NewService(feedRepo, viewerStateResolver, authorResolver, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.Use(rateLimiter.Middleware)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	routes.RegisterUserRoutes(r, userService, authMiddleware)
	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterFollowRoutes(r, graphService, authMiddleware)
	routes.RegisterInteractionRoutes(r, interactionService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)
	routes.RegisterNotificationRoutes(r, notificationService, authMiddleware)
	routes.RegisterFeedRoutes(r, feedService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Glimpse server starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
