package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // GYM_TIMEZONE tetap jalan di image tanpa zoneinfo

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/robfig/cron/v3"

	"grahafitness_backend/internals/configs"
	database "grahafitness_backend/internals/databases"
	memberRepo "grahafitness_backend/internals/features/members/repository"
	memberScheduler "grahafitness_backend/internals/features/members/scheduler"
	memberSvc "grahafitness_backend/internals/features/members/service"
	authRepo "grahafitness_backend/internals/features/users/auth/repository"
	authScheduler "grahafitness_backend/internals/features/users/auth/scheduler"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
	middlewares "grahafitness_backend/internals/middlewares"
	"grahafitness_backend/internals/middlewares/logger"
	routes "grahafitness_backend/internals/route"
	"grahafitness_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	logx.Setup(cfg.LogLevel, cfg.IsProduction())
	log := logx.Module("main")

	app := fiber.New(middlewares.WithTrustedProxies(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	}, cfg.TrustedProxyList()))

	// ⚙️ middleware dasar
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(logger.RequestLogger(10 * time.Second))
	app.Use(middlewares.MetricsMiddleware())
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(middlewares.GlobalRateLimiter())

	// 🔌 DB connect + migrate + pool + warm-up
	database.ConnectDB(cfg)
	if err := database.AutoMigrate(database.DB); err != nil {
		log.WithError(err).Fatal("❌ Migrasi gagal")
	}
	database.TunePool()
	database.WarmUpQueries()
	seeds.RunAllSeeds(database.DB, cfg.SeedDefaultPassword)

	// ⏱ scheduler setelah DB siap
	sched := cron.New(cron.WithLocation(cfg.Location()))
	if _, err := authScheduler.RegisterBlacklistCleanup(sched, authRepo.NewAuthRepository(database.DB), cfg.TokenBlacklistTTLDays); err != nil {
		log.WithError(err).Error("❌ Gagal menjadwalkan cleanup blacklist")
	}
	sweeper := memberSvc.NewMemberService(memberRepo.NewMemberRepository(database.DB), dbtime.NewClock(cfg.Location()))
	if _, err := memberScheduler.RegisterMembershipSweep(sched, cfg.MembershipSweepCron, sweeper); err != nil {
		log.WithError(err).Error("❌ MEMBERSHIP_SWEEP_CRON tidak valid")
	}
	sched.Start()

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, cfg)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Infof("🏋️ Graha Fitness API listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + stop cron + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	<-sched.Stop().Done()
	_ = app.ShutdownWithContext(ctx)
	database.Close()
}
