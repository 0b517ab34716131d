package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/silverspace/go-silverspace/catalog"
	"github.com/silverspace/go-silverspace/config"
	"github.com/silverspace/go-silverspace/mail"
	"github.com/silverspace/go-silverspace/metadata"
	"github.com/silverspace/go-silverspace/recommend"
	"github.com/silverspace/go-silverspace/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	cat, similarity, err := catalog.Load(loadCtx, cfg.CatalogDSN, cfg.BlobToken)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("dsn", cfg.CatalogDSN).Msg("load catalog")
	}
	logger.Info().Int("movies", cat.Len()).Msg("catalog loaded")

	index, err := recommend.New(cat, similarity, recommend.WithTopK(cfg.TopK))
	if err != nil {
		logger.Fatal().Err(err).Msg("build recommendation index")
	}

	srvCfg := server.Config{
		Index:  index,
		Logger: logger,
	}
	if cfg.TMDBAPIKey != "" {
		srvCfg.Posters = metadata.NewTMDBClient(cfg.TMDBAPIKey)
	} else {
		logger.Warn().Msg("TMDB API key not set, posters disabled")
	}
	if cfg.OMDBAPIKey != "" {
		srvCfg.Details = metadata.NewOMDBClient(cfg.OMDBAPIKey)
	} else {
		logger.Warn().Msg("OMDB API key not set, movie details disabled")
	}
	if cfg.YouTubeAPIKey != "" {
		srvCfg.Trailers = metadata.NewYouTubeClient(cfg.YouTubeAPIKey)
	} else {
		logger.Warn().Msg("YouTube API key not set, trailers disabled")
	}
	if cfg.MailEnabled() {
		srvCfg.Mailer = mail.NewSMTPMailer(mail.Config{
			Host:         cfg.SMTP.Host,
			Port:         cfg.SMTP.Port,
			Sender:       cfg.SMTP.Sender,
			SenderName:   cfg.SMTP.SenderName,
			Password:     cfg.SMTP.Password,
			SupportInbox: cfg.SMTP.SupportInbox,
		}, logger)
	} else {
		logger.Warn().Msg("SMTP not configured, outbound mail disabled")
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("create server")
	}

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}
