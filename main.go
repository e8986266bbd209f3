package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/config"
	"github.com/junaidrashid-git/sportsstore/database"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/middleware"
	"github.com/junaidrashid-git/sportsstore/realtime"
	"github.com/junaidrashid-git/sportsstore/routes"
	"github.com/junaidrashid-git/sportsstore/session"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Logger.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("✅ Starting application...", "env", cfg.Server.AppEnv)

	// Init DB
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("❌ DB connection failed", "error", err)
	}

	// Auto-migrate and seed the demo catalog
	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ AutoMigrate failed", "error", err)
	}
	if cfg.Database.SeedData {
		seeded, err := database.Seed(context.Background(), db)
		if err != nil {
			log.Fatal("❌ Seeding failed", "error", err)
		}
		if seeded {
			log.Info("✅ Demo catalog seeded")
		}
	}

	sessions, closeSessions, err := initSessionStore(cfg)
	if err != nil {
		log.Fatal("❌ Session store failed", "error", err)
	}
	defer closeSessions()

	// Gin setup
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), middleware.CORS(cfg.Server.CORSOrigins))

	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Sessions: sessions,
		Hub:      realtime.NewHub(log),
	})

	log.Info("🚀 Server running", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("❌ Failed to start server", "error", err)
	}
}

// initSessionStore picks the cart session backend from SESSION_BACKEND.
func initSessionStore(cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		store := session.NewRedisStore(client, session.RedisOptions{
			Name:   cfg.Session.Name,
			MaxAge: cfg.Session.MaxAge,
			Secure: cfg.Session.Secure,
		})
		return store, func() { _ = client.Close() }, nil
	case "memory":
		return session.NewMemoryStore(session.MemoryOptions{Name: cfg.Session.Name, MaxAge: cfg.Session.MaxAge}), func() {}, nil
	case "cookie", "":
		store := session.NewCookieStore([]byte(cfg.Session.Secret), session.CookieOptions{
			Name:   cfg.Session.Name,
			MaxAge: cfg.Session.MaxAge,
			Secure: cfg.Session.Secure,
		})
		return store, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unsupported SESSION_BACKEND %q", cfg.Session.Backend)
}
