package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/bellathena/cityhill-backoffice/internal/config"
	"github.com/bellathena/cityhill-backoffice/internal/handler"
	"github.com/bellathena/cityhill-backoffice/internal/jobs"
	"github.com/bellathena/cityhill-backoffice/internal/notify"
	"github.com/bellathena/cityhill-backoffice/internal/queue"
	"github.com/bellathena/cityhill-backoffice/internal/router"
	"github.com/bellathena/cityhill-backoffice/internal/session"
	"github.com/bellathena/cityhill-backoffice/internal/store"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
	"github.com/bellathena/cityhill-backoffice/internal/utils"
	"github.com/bellathena/cityhill-backoffice/internal/validator"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := utils.NewLogger(cfg.Env)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; rate limiting and response cache disabled, sessions in-process")
	}

	api := upstream.New(cfg.UpstreamURL, cfg.UpstreamToken, cfg.UpstreamTimeout)
	st := store.New(api)

	// The service is useless without a snapshot; fail fast when the upstream
	// cannot be reached at boot.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := st.Sync(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("initial snapshot sync failed")
	}
	cancel()
	log.Info().Uint64("version", st.Version()).Msg("initial snapshot loaded")

	cron, err := jobs.InitCronJobs(cfg.SyncSchedule, st, log)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.SyncSchedule).Msg("cron setup failed")
	}
	defer cron.Stop()

	tg, err := notify.NewTelegramFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("telegram setup failed")
	}
	var onEvent func(queue.ReservationEvent)
	if tg != nil {
		onEvent = tg.NotifyReservation
		log.Info().Msg("telegram notifications enabled")
	}
	go func() {
		if err := queue.StartReservationConsumer(onEvent); err != nil {
			log.Error().Err(err).Msg("reservation consumer stopped")
		}
	}()

	sessions := session.NewTokenStore(rdb)
	h := handler.New(api, st, sessions, cfg, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(echomw.Recover())
	e.Use(utils.RequestLogger(log))
	router.RegisterRoutes(e, h, cfg, st, rdb)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
