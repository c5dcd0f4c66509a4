package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bookpoint/bookpoint/internal/auth"
	"github.com/bookpoint/bookpoint/internal/handler"
	"github.com/bookpoint/bookpoint/internal/storage/mongostore"
	"github.com/bookpoint/bookpoint/pkg/config"
	"github.com/bookpoint/bookpoint/pkg/email"
	"github.com/bookpoint/bookpoint/pkg/httpserver"
	"github.com/bookpoint/bookpoint/pkg/jwt"
	"github.com/bookpoint/bookpoint/pkg/logger"
	mongodb "github.com/bookpoint/bookpoint/pkg/mongo"
)

const serviceName = "bookpoint-api"

func main() {
	var (
		authCfg    auth.Config
		mongoCfg   mongodb.Config
		httpCfg    httpserver.Config
		handlerCfg handler.Config
		emailCfg   email.Config
	)
	config.MustLoad(&authCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&handlerCfg)
	config.MustLoad(&emailCfg)

	log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), serviceName))
	logger.SetAsDefault(log)

	tokens, err := jwt.New([]byte(authCfg.JWTSecret), authCfg.TokenTTL)
	if err != nil {
		log.Error("failed to initialize token service", logger.Error(err))
		os.Exit(1)
	}

	// The connection is established lazily by the first request that needs it.
	connector := mongodb.NewConnector(mongoCfg)
	store := mongostore.New(connector)

	svc := auth.NewService(store, tokens, newMailer(emailCfg, log),
		auth.WithLogger(log),
		auth.WithBcryptCost(authCfg.BcryptCost),
		auth.WithResetTokenTTL(authCfg.ResetTokenTTL),
		auth.WithAppURL(authCfg.AppURL),
	)

	router := handler.Router(handlerCfg, svc, tokens, mongodb.Healthcheck(connector), log)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// newMailer prefers Postmark and falls back to the on-disk dev sender when
// the tokens are not configured.
func newMailer(cfg email.Config, log *slog.Logger) email.EmailSender {
	sender, err := email.NewPostmarkClient(cfg)
	if err != nil {
		log.Warn("postmark not configured, writing outbound emails to disk",
			slog.String("dir", cfg.DevOutputDir),
			logger.Error(err),
		)
		return email.NewDevSender(cfg.DevOutputDir)
	}
	return sender
}
