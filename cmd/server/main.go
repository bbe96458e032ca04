package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/auth"
	"github.com/ClaraVasseur/InstaLite-Back/internal/comment"
	"github.com/ClaraVasseur/InstaLite-Back/internal/config"
	"github.com/ClaraVasseur/InstaLite-Back/internal/database"
	"github.com/ClaraVasseur/InstaLite-Back/internal/feed"
	"github.com/ClaraVasseur/InstaLite-Back/internal/like"
	"github.com/ClaraVasseur/InstaLite-Back/internal/middleware"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
	"github.com/ClaraVasseur/InstaLite-Back/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET manquant")
	}

	database.Connect(cfg.DBUrl)
	if err := database.DB.AutoMigrate(
		&account.Account{},
		&post.Post{},
		&like.Like{},
		&comment.Comment{},
	); err != nil {
		log.Fatalf("Erreur migration : %v", err)
	}

	if err := storage.Init(cfg); err != nil {
		log.Fatalf("Erreur stockage média : %v", err)
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Médias stockés localement
	if cfg.AWSBucket == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)

	// Lectures publiques, identité facultative pour is_liked
	read := api.Group("")
	read.Use(middleware.OptionalAuthMiddleware())
	read.GET("/posts", feed.GetFeed)
	read.GET("/posts/:id", feed.GetPostDetail)
	read.GET("/posts/:id/likes", like.GetLikeStatus)
	read.GET("/posts/:id/comments", feed.GetComments)

	// Mutations authentifiées
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", auth.Me)
	authed.POST("/posts", post.CreatePost)
	authed.PUT("/posts/:id", post.UpdatePost)
	authed.DELETE("/posts/:id", post.DeletePost)
	authed.POST("/posts/:id/like", like.ToggleLike)
	authed.POST("/posts/:id/comments", comment.CreateComment)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Erreur serveur : %v", err)
	}
}
