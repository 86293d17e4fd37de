package http

import (
	"context"
	"log"
	"net/http"

	"wecomment/internal/cache"
	"wecomment/internal/config"
	"wecomment/internal/database"
	"wecomment/internal/google"
	"wecomment/internal/handler"
	"wecomment/internal/redis"
	"wecomment/internal/repository"
	"wecomment/internal/service"
	"wecomment/internal/youtube"
)

// Run wires the whole server together and blocks on ListenAndServe.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var videoCache cache.VideoCache
	if cfg.RedisURL != "" {
		rdb, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		if err := rdb.Ping(context.Background()); err != nil {
			return err
		}
		defer rdb.Close()
		videoCache = cache.NewVideoCache(rdb.Client)
		log.Println("Video cache enabled")
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	identity := google.NewConfig(cfg.GoogleClientID, cfg.GoogleClientSecret,
		cfg.BackendBaseURL+"/auth/google/callback")
	yt := youtube.NewClient(cfg.YouTubeAPIKey)

	videoService := service.NewVideoService(videoRepo, yt, videoCache)
	commentService := service.NewCommentService(commentRepo, voteRepo, videoRepo, videoService)
	voteService := service.NewVoteService(voteRepo, commentRepo)
	authService := service.NewAuthService(userRepo, identity, cfg)

	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, identity),
		VideoHandler:   handler.NewVideoHandler(videoService),
		CommentHandler: handler.NewCommentHandler(commentService),
		VoteHandler:    handler.NewVoteHandler(voteService),
		JWTSecret:      cfg.JWTSecret,
		CORSOrigins:    cfg.CORSOrigins,
	})

	log.Printf("Server listening on port %s", cfg.ServerPort)
	return http.ListenAndServe(":"+cfg.ServerPort, router)
}
