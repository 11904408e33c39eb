package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Postgres Postgres
	Redis    Redis
	Bot      Bot
	Engine   Engine
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"re_deals"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Bot уведомления о публикации и команды каталога. Без токена бот отключён.
type Bot struct {
	Token    string `env:"BOT_TOKEN" json:"-"`
	ChatID   int64  `env:"BOT_CHAT_ID"`
	Currency string `env:"BOT_CURRENCY" envDefault:"USD"`
	BaseURL  string `env:"BOT_DEAL_BASE_URL"`

	Commands       bool    `env:"BOT_COMMANDS" envDefault:"false"`
	AllowedChatIDs []int64 `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`
	PageSize       int     `env:"BOT_PAGE_SIZE" envDefault:"5"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

func (b Bot) CommandsEnabled() bool {
	return b.Token != "" && b.Commands
}

// Engine параметры расчётов.
type Engine struct {
	ProjectionYears   int           `env:"ENGINE_PROJECTION_YEARS" envDefault:"10"`
	GridConcurrency   int           `env:"ENGINE_GRID_CONCURRENCY" envDefault:"4"`
	AnalysisCacheTTL  time.Duration `env:"ENGINE_ANALYSIS_CACHE_TTL" envDefault:"24h"`
	LocalCacheTTL     time.Duration `env:"ENGINE_LOCAL_CACHE_TTL" envDefault:"5m"`
	Queue             string        `env:"ENGINE_QUEUE" envDefault:"analysis"`
	WorkerConcurrency int           `env:"ENGINE_WORKER_CONCURRENCY" envDefault:"2"`
	WorkerShutdown    time.Duration `env:"ENGINE_WORKER_SHUTDOWN_TIMEOUT" envDefault:"8s"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
