package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/gabrielbarbershop/booking-api/internal/config"
	dbpkg "github.com/gabrielbarbershop/booking-api/internal/db"
	"github.com/gabrielbarbershop/booking-api/internal/middleware"
	"github.com/gabrielbarbershop/booking-api/internal/notify"
	"github.com/gabrielbarbershop/booking-api/internal/reminder"
	"github.com/gabrielbarbershop/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	var mailer notify.Mailer = notify.LogMailer{}
	if sg := notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName); sg != nil {
		mailer = sg
	}
	notifier := notify.NewService(mailer, cfg.ShopName, cfg.ShopEmail)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, notifier, cfg)

	reminder.NewService(db, notifier, cfg.ShopTimezone).StartScheduler()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
