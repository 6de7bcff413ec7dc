package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/avion-bot/avion/internal/accountdelivery"
	"github.com/avion-bot/avion/internal/accountrepo"
	"github.com/avion-bot/avion/internal/accountservice"
	"github.com/avion-bot/avion/internal/bot"
	"github.com/avion-bot/avion/internal/healthdelivery"
	"github.com/avion-bot/avion/internal/infodelivery"
	"github.com/avion-bot/avion/internal/middleware"
	"github.com/avion-bot/avion/internal/transferdelivery"
	"github.com/avion-bot/avion/internal/transferrepo"
	"github.com/avion-bot/avion/internal/transferservice"
	"github.com/avion-bot/avion/internal/xkcddelivery"
	"github.com/avion-bot/avion/internal/xkcdservice"
	"github.com/avion-bot/avion/pkg/configpkg"
	"github.com/avion-bot/avion/pkg/dbpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	accountRepo := accountrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)

	accountService := accountservice.New(accountRepo)
	transferService := transferservice.New(transferRepo, accountService, config.ConfirmDuration)
	xkcdService := xkcdservice.New()

	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)
	infoHandler := infodelivery.NewHandler()
	xkcdHandler := xkcddelivery.NewHandler(xkcdService)

	handlers := bot.Handlers{
		Commands: map[string]bot.HandlerFunc{
			"balance":  accountHandler.Balance,
			"register": accountHandler.Register,
			"give":     transferHandler.Give,
			"userinfo": infoHandler.UserInfo,
			"avatar":   infoHandler.Avatar,
			"about":    infoHandler.About,
			"xkcd":     xkcdHandler.Xkcd,
		},
		Component: transferHandler.Component,
	}

	b, err := bot.New(config, logger, handlers)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create bot")
	}

	status := healthdelivery.NewServer(conn, logger)

	go func() {
		err := http.ListenAndServe(config.StatusAddress, status)
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("cannot start status server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped")
	}

	logger.Info().Msg("shutting down")
}
