package main

import (
	"context"
	"errors"
	"log"
	"time"

	"vantage/auth"
	"vantage/config"
	"vantage/database"
	"vantage/handlers"
	"vantage/imagestore"
	"vantage/middleware"
	"vantage/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Create context with timeout for initial connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if cfg.BootstrapAdmin() {
		if err := ensureAdmin(ctx, db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal("Failed to bootstrap admin:", err)
		}
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())

	var images imagestore.Store
	if s3cfg := s3Config(cfg); s3cfg.Enabled() {
		s3Store, err := imagestore.NewS3Store(s3cfg)
		if err != nil {
			log.Fatal("Failed to configure image store:", err)
		}
		images = s3Store
	} else {
		log.Println("Image hosting not configured, /api/upload disabled")
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:          5 * time.Minute,
	}))

	registerRoutes(r, db, tokens, images)

	log.Println("Server starting on", cfg.ServerAddr())
	r.Run(cfg.ServerAddr())
}

func registerRoutes(r *gin.Engine, db *database.DB, tokens *auth.TokenService, images imagestore.Store) {
	authRequired := middleware.AuthRequired(db, tokens)
	adminRequired := middleware.AdminRequired()

	r.GET("/health", handlers.HealthCheck)

	r.POST("/api/auth/register", handlers.Register(db))
	r.POST("/api/auth/login", handlers.Login(db, tokens))
	r.GET("/api/auth/me", authRequired, handlers.Me())

	r.GET("/api/projects", handlers.ListProjects(db))
	r.GET("/api/projects/:id", handlers.GetProject(db))
	r.POST("/api/projects", authRequired, adminRequired, handlers.CreateProject(db))
	r.PUT("/api/projects/:id", authRequired, adminRequired, handlers.UpdateProject(db))
	r.DELETE("/api/projects/:id", authRequired, adminRequired, handlers.DeleteProject(db))

	r.GET("/api/blogs", handlers.ListBlogs(db))
	r.GET("/api/blogs/all", authRequired, adminRequired, handlers.ListAllBlogs(db))
	r.GET("/api/blogs/:slug", handlers.GetBlog(db))
	r.POST("/api/blogs", authRequired, adminRequired, handlers.CreateBlog(db))
	r.PUT("/api/blogs/:id", authRequired, adminRequired, handlers.UpdateBlog(db))
	r.DELETE("/api/blogs/:id", authRequired, adminRequired, handlers.DeleteBlog(db))

	r.POST("/api/leads", handlers.CreateLead(db))
	r.GET("/api/leads", authRequired, adminRequired, handlers.ListLeads(db))
	r.PUT("/api/leads/:id", authRequired, adminRequired, handlers.UpdateLead(db))
	r.DELETE("/api/leads/:id", authRequired, adminRequired, handlers.DeleteLead(db))

	r.POST("/api/upload", authRequired, adminRequired, handlers.Upload(images))
}

// ensureAdmin creates the configured admin account on first start.
func ensureAdmin(ctx context.Context, db *database.DB, username, password string) error {
	_, err := db.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.CreateUser(ctx, username, hash, models.RoleAdmin)
	return err
}

func s3Config(cfg *config.Config) imagestore.S3Config {
	return imagestore.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Folder:          cfg.S3Folder,
		PublicURL:       cfg.S3PublicURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}
