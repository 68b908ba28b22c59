package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/joho/godotenv"

	"weather-lookup/config"
	v1 "weather-lookup/internal/controllers/http/v1"
	"weather-lookup/internal/repositories"
	"weather-lookup/internal/services/weather"
	"weather-lookup/internal/session"
	"weather-lookup/pkg/httpserver"
	"weather-lookup/pkg/logger"
	"weather-lookup/pkg/observe"
)

// @title Weather Lookup
// @version 1.0.0
// @description Single-screen current weather lookup backed by OpenWeatherMap.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Lookup
// @tag.description Query and submit the lookup view of the calling session
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// .env is optional; real deployments export OPENWEATHER_API_KEY directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("cannot read .env file: %v", err)
	}

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	var hooks []io.Writer
	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		if sentryHook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN); err != nil {
			log.Printf("sentry disabled: %v", err)
		} else {
			hooks = append(hooks, sentryHook)
		}
	}

	l := logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Hooks:   hooks,
	}, os.Stdout)
	if sentryHook != nil {
		sentryHook.SetLogger(l)
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
		AccessLog:    l,
		CORSOrigins:  cnf.Server.CORSOrigins,
	})

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather repository", map[string]any{"err": err})
	}

	service := weather.NewWeatherService(repo, l)

	sessions := session.NewStore(service, time.Duration(cnf.Session.TTL)*time.Second, clock.NewClock(), l)

	v1.NewRouter(
		app,
		sessions,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"version":  cnf.App.Version,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Error(err)
		}
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
