package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"

	"github.com/SwapnilRC1995/movies-api-app/auth"
	"github.com/SwapnilRC1995/movies-api-app/httpserver"
	"github.com/SwapnilRC1995/movies-api-app/mongodb"
	"github.com/SwapnilRC1995/movies-api-app/movie"
	"github.com/SwapnilRC1995/movies-api-app/pkg/config"
	"github.com/SwapnilRC1995/movies-api-app/pkg/sentry"
	"github.com/SwapnilRC1995/movies-api-app/pkg/session"
	"github.com/SwapnilRC1995/movies-api-app/pkg/token"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	// The storage connection is acquired once here and injected; handlers
	// never trigger connection setup themselves.
	db, err := mongodb.NewConnection(context.Background(), mongodb.Options{
		URI:      cfg.ConnectionString,
		Database: cfg.DB.Name,
	})
	if err != nil {
		slog.Error("Cannot open mongodb connection", "error", err)
		os.Exit(1)
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessions session.Store = session.NewMemoryStore(sessionTTL)
	if cfg.Redis.Addr != "" {
		sessions = session.NewRedisStore(
			session.MustEstablishConn(cfg.Redis.Addr, cfg.Redis.Password),
			sessionTTL,
		)
	}

	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.MovieService = movie.NewUsecase(movieRepo)
	server.AuthService = auth.NewUsecase(user.NewUsecase(userRepo), token.NewProvider(cfg.SecretKey))
	server.Sessions = sessions

	slog.Info("server started!", "addr", server.Addr)
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
