package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/gin-gonic/gin"
	"github.com/iamvkosarev/replyme/config"
	httpapi "github.com/iamvkosarev/replyme/internal/api"
	"github.com/iamvkosarev/replyme/internal/logger"
	in_memory "github.com/iamvkosarev/replyme/internal/storage/in-memory"
	key_value "github.com/iamvkosarev/replyme/internal/storage/key-value"
	"github.com/iamvkosarev/replyme/internal/usecase"
	"github.com/iamvkosarev/replyme/pkg/tokens"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc/pool"
)

type storages struct {
	history usecase.HistoryStorage
	user    usecase.UserStorage
	profile usecase.ProfileStorage
	close   func() error
}

// newStorages uses Redis when an endpoint is configured and in-memory maps otherwise.
func newStorages(ctx context.Context, cfg config.Redis) (storages, error) {
	if cfg.Endpoint == "" {
		logger.Warn("Redis endpoint is not set, history is kept in memory", nil)
		userStorage := in_memory.NewUserStorage()
		return storages{
			history: in_memory.NewHistoryStorage(cfg.HistoryLimit),
			user:    userStorage,
			profile: userStorage,
			close:   func() error { return nil },
		}, nil
	}

	rdb := redis.NewClient(
		&redis.Options{
			Addr:     cfg.Endpoint,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
	)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return storages{}, fmt.Errorf("failed to ping redis %s: %w", cfg.Endpoint, err)
	}
	userStorage := key_value.NewUserStorage(rdb)
	return storages{
		history: key_value.NewHistoryStorage(rdb, cfg.HistoryLimit),
		user:    userStorage,
		profile: userStorage,
		close:   rdb.Close,
	}, nil
}

// Run serves the HTTP API and, when a token is configured, the Telegram bot
// until ctx is done or one of them fails.
func Run(ctx context.Context, cfg *config.Config) error {
	store, err := newStorages(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			logger.Error("Failed to close storage", err, nil)
		}
	}()

	openAIUsecase := usecase.NewOpenAIUsecase(cfg.Generation)

	comebackUsecase := usecase.NewComebackUsecase(
		usecase.ComebackUsecaseDeps{
			Model: openAIUsecase,
		},
	)

	historyUsecase := usecase.NewHistoryUsecase(
		usecase.HistoryUsecaseDeps{
			HistoryStorage: store.history,
			Generator:      comebackUsecase,
		}, cfg.HTTP.FreeGenerations,
	)

	userUsecase := usecase.NewUserUsecase(
		usecase.UserUsecaseDeps{
			UserStorage:    store.user,
			ProfileStorage: store.profile,
		},
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.SetupRouter(
		httpapi.RouterDeps{
			History:        historyUsecase,
			User:           userUsecase,
			Counter:        tokens.NewCounter(cfg.Generation.Model),
			JWTSecret:      cfg.Auth.JWTSecret,
			MaxInputTokens: cfg.Generation.MaxInputTokens,
		},
	)
	server := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	var telegramUsecase *usecase.TelegramUsecase
	if cfg.Telegram.TelegramAPIToken != "" {
		bot, err := api.NewBotAPI(cfg.Telegram.TelegramAPIToken)
		if err != nil {
			return fmt.Errorf("failed to create new bot: %w", err)
		}
		logger.Info("Authorized telegram bot", logger.Fields{"account": bot.Self.UserName})

		telegramUsecase, err = usecase.NewTelegramUsecase(
			cfg.Telegram, usecase.TelegramUsecaseDeps{
				User:    userUsecase,
				History: historyUsecase,
				Bot:     bot,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to create telegram usecase: %w", err)
		}
	}

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		logger.Info("Starting HTTP server", logger.Fields{"address": cfg.HTTP.Address})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve http: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down HTTP server", nil)
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown http server: %w", err)
		}
		return nil
	})
	if telegramUsecase != nil {
		p.Go(telegramUsecase.Run)
	}
	return p.Wait()
}
