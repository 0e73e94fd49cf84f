package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/barberbook/barberbook-api/internal/config"
	dbpkg "github.com/barberbook/barberbook-api/internal/db"
	infraRepo "github.com/barberbook/barberbook-api/internal/infra/repository"
	"github.com/barberbook/barberbook-api/internal/logger"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/otp"
	"github.com/barberbook/barberbook-api/internal/routes"
	"github.com/barberbook/barberbook-api/internal/sms"
	"github.com/barberbook/barberbook-api/internal/sweeper"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	db := dbpkg.NewDB(cfg, log)

	// OTP throttling runs unlimited without redis; fine for development.
	var limiter otp.Limiter = otp.Unlimited{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = otp.NewRedisLimiter(rdb, cfg.OTPRequestLimit, cfg.OTPRequestWindow)
	}

	sender := sms.NewLogSender(log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Sender:  sender,
		Limiter: limiter,
		Log:     log,
	})

	sweep := sweeper.New(infraRepo.NewBookingGormRepository(db), log)
	if err := sweep.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start otp sweeper")
	}
	defer sweep.Stop()

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
