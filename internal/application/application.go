package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"re_deals/internal/config"
	service "re_deals/internal/domain/service/deal"
	"re_deals/internal/infrastructure/cache"
	"re_deals/internal/infrastructure/notifier"
	"re_deals/internal/infrastructure/persistence"
	"re_deals/internal/server"
	"re_deals/internal/transport/bot"
	"re_deals/internal/transport/bot/handler"
	"re_deals/internal/worker"
	"re_deals/pkg/application/connectors"
	"re_deals/pkg/application/modules"
	"re_deals/pkg/contextx"
	"re_deals/pkg/httpx"
	"re_deals/pkg/logx"
	"re_deals/pkg/metrics"
	"re_deals/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает HTTP API, воркер прогрева расчётов, метрики и пробы.
// Возвращает управление после отмены ctx и остановки всех модулей.
func Run(ctx context.Context, level *slog.LevelVar) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if err = level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		return fmt.Errorf("level.UnmarshalText: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Postgres.ConnMaxIdleTime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rds := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rds.Client(ctx)
	defer rds.Close(ctx)

	asynqClient := asynq.NewClient(rds.AsynqOpt())
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger(ctx).Error("asynqClient.Close", logx.Error(err))
		}
	}()

	dealNotifier, err := newNotifier(cfg.Bot, cfg.HTTP.LogFieldMaxLen)
	if err != nil {
		return err
	}

	dealService := service.NewDealService(
		persistence.NewDealRepository(db),
		cache.NewAnalysisCache(redisClient, cfg.Engine.AnalysisCacheTTL),
		dealNotifier,
		worker.NewEnqueuer(asynqClient, cfg.Engine.Queue),
	).
		WithProjectionYears(cfg.Engine.ProjectionYears).
		WithGridConcurrency(cfg.Engine.GridConcurrency).
		WithLocalCacheTTL(cfg.Engine.LocalCacheTTL)

	srv := server.NewServer(
		server.NewAnalysisServer(dealService),
		server.NewDealServer(dealService),
	)

	commandBot, err := newCommandBot(cfg.Bot, dealService)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, srv.Handler(cfg.HTTP.LogFieldMaxLen))
	modules.Background{Name: "prometheusServer"}.Run(ctx, g, metrics.NewPrometheusServer(cfg.Metrics.ListenAddress).Run)
	modules.Background{Name: "probeServer"}.Run(ctx, g, probe.NewServer(
		cfg.Probe.ListenAddress,
		probe.Options{Name: cfg.App.Name, Version: cfg.App.Version},
		probe.Check{Name: "postgres", Ping: pg.Ping},
		probe.Check{Name: "redis", Ping: rds.Ping},
	).Run)
	modules.AsynqServer{
		Redis:           rds.AsynqOpt(),
		Concurrency:     cfg.Engine.WorkerConcurrency,
		ShutdownTimeout: cfg.Engine.WorkerShutdown,
	}.Run(ctx, g,
		modules.AsynqQueues{cfg.Engine.Queue: 1},
		worker.NewAnalysisWarmer(dealService).Handler(),
	)

	if commandBot != nil {
		modules.Background{Name: "commandBot"}.Run(ctx, g, commandBot.Run)
	}

	logger(ctx).Info("application started",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// newNotifier запросы к Bot API пишутся в лог, токен в пути маскируется.
func newNotifier(cfg config.Bot, logFieldMaxLen int) (service.Notifier, error) {
	if !cfg.Enabled() {
		return notifier.Nop{}, nil
	}

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithClient("telegram"),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}

	bot, err := notifier.NewTelegramBot(cfg.Token, cfg.ChatID, cfg.Currency, cfg.BaseURL,
		telego.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	return bot, nil
}

func newCommandBot(cfg config.Bot, dealService *service.DealService) (*bot.Bot, error) {
	if !cfg.CommandsEnabled() {
		return nil, nil //nolint:nilnil
	}

	h := handler.New(dealService, cfg.Currency).WithPageSize(cfg.PageSize)

	b, err := bot.New(cfg.Token, h, cfg.AllowedChatIDs...)
	if err != nil {
		return nil, fmt.Errorf("bot.New: %w", err)
	}

	return b, nil
}
