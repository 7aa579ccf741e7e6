package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"seatplan/internal/config"
	"seatplan/internal/database"
	"seatplan/internal/handler"
	"seatplan/internal/middleware"
	"seatplan/internal/queue"
	"seatplan/internal/repository"
	"seatplan/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient() // nil when redis is unreachable; middleware degrades to pass-through

	members := repository.NewMemberRepo(db)
	layouts := repository.NewLayoutRepo(db)
	h := handler.New(members, layouts)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterRoutes(e, h)

	go func() {
		if err := queue.StartLayoutConsumer(); err != nil {
			log.Printf("queue consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
