package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vesselBooker/internal/config"
	"vesselBooker/internal/http-server/handlers/booking/createBooking"
	"vesselBooker/internal/http-server/handlers/booking/deleteBooking"
	"vesselBooker/internal/http-server/handlers/booking/listBookings"
	"vesselBooker/internal/http-server/handlers/booking/refreshBookings"
	"vesselBooker/internal/http-server/handlers/booking/setFilters"
	"vesselBooker/internal/http-server/handlers/booking/setSort"
	"vesselBooker/internal/http-server/handlers/booking/updateBooking"
	"vesselBooker/internal/http-server/handlers/booking/updateBookingStatus"
	"vesselBooker/internal/http-server/middleware/mwlogger"
	"vesselBooker/internal/lib/logger/handlers/slogpretty"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/mockapi"
	"vesselBooker/internal/session"
	"vesselBooker/internal/storage/localstore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting vessel booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store := localstore.New(cfg.Storage.Path, log)

	client := mockapi.New(store, log, mockapi.Options{
		Latency:       cfg.MockAPI.Latency,
		CreateLatency: cfg.MockAPI.CreateLatency,
		FailureRate:   cfg.MockAPI.FailureRate,
	})

	controller := session.New(client, log)

	if res := controller.Refresh(); !res.Success {
		// Simulated failures hit the initial load too; the client can retry.
		log.Warn("initial load failed", slog.String("error", res.Error))
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/bookings", func(r chi.Router) {
		r.Get("/", listBookings.New(log, controller))
		r.Post("/", createBooking.New(log, controller))
		r.Post("/refresh", refreshBookings.New(log, controller))
		r.Put("/filters", setFilters.New(log, controller))
		r.Delete("/filters", setFilters.NewClear(log, controller))
		r.Post("/sort", setSort.New(log, controller))
		r.Patch("/{id}", updateBooking.New(log, controller))
		r.Post("/{id}/status", updateBookingStatus.New(log, controller))
		r.Delete("/{id}", deleteBooking.New(log, controller))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
