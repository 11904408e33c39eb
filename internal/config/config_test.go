package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"re_deals/internal/config"
)

func TestLoad(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://re:re@localhost:5432/re_deals")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("ENGINE_GRID_CONCURRENCY", "8")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(10, cfg.Engine.ProjectionYears)
	rq.Equal(8, cfg.Engine.GridConcurrency)
	rq.Equal(24*time.Hour, cfg.Engine.AnalysisCacheTTL)
	rq.Equal(2, cfg.Engine.WorkerConcurrency)
	rq.Equal(5*time.Minute, cfg.Postgres.ConnMaxIdleTime)
	rq.Equal("USD", cfg.Bot.Currency)
	rq.False(cfg.Bot.Enabled())
	rq.False(cfg.Bot.CommandsEnabled())
}

func TestLoadBot(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://re:re@localhost:5432/re_deals")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "-100500")
	t.Setenv("BOT_COMMANDS", "true")
	t.Setenv("BOT_ALLOWED_CHAT_IDS", "1,2")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.True(cfg.Bot.Enabled())
	rq.True(cfg.Bot.CommandsEnabled())
	rq.Equal([]int64{1, 2}, cfg.Bot.AllowedChatIDs)
	rq.Equal(int64(-100500), cfg.Bot.ChatID)
}

func TestLoadRequired(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	_, err := config.Load()
	rq.Error(err)
}
