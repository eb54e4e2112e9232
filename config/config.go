package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Generation struct {
	APIKey                string        `yaml:"api_key" env:"GROQ_API_KEY" env-required:"true"`
	BaseURL               string        `yaml:"base_url" env:"GENERATION_BASE_URL" env-default:"https://api.groq.com/openai/v1"`
	Model                 string        `yaml:"model" env:"GENERATION_MODEL" env-default:"llama-3.3-70b-versatile"`
	MaxTokens             int           `yaml:"max_tokens" env:"GENERATION_MAX_TOKENS" env-default:"1000"`
	StandardTemperature   float32       `yaml:"standard_temperature" env-default:"0.85"`
	UnfilteredTemperature float32       `yaml:"unfiltered_temperature" env-default:"1.0"`
	RequestTimeout        time.Duration `yaml:"request_timeout" env:"GENERATION_TIMEOUT" env-default:"20s"`
	MaxInputTokens        int           `yaml:"max_input_tokens" env-default:"500"`
}

type HTTP struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Environment     string        `yaml:"environment" env:"ENVIRONMENT" env-default:"development"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	FreeGenerations int           `yaml:"free_generations" env-default:"1"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"SUPABASE_JWT_SECRET"`
}

type Redis struct {
	Endpoint     string `yaml:"endpoint" env:"REDIS_ENDPOINT"`
	Password     string `yaml:"password" env:"REDIS_PASSWORD"`
	DB           int    `yaml:"db" env:"REDIS_DB"`
	HistoryLimit int    `yaml:"history_limit" env-default:"100"`
}

type Telegram struct {
	TelegramAPIToken  string  `yaml:"token" env:"TELEGRAM_APITOKEN"`
	AllowedTelegramID []int64 `yaml:"allowed_ids" env:"ALLOWED_TELEGRAM_ID" env-separator:","`
}

type Sentry struct {
	DSN string `yaml:"dsn" env:"SENTRY_DSN"`
}

type Config struct {
	Generation Generation `yaml:"generation"`
	HTTP       HTTP       `yaml:"http"`
	Auth       Auth       `yaml:"auth"`
	Redis      Redis      `yaml:"redis"`
	Telegram   Telegram   `yaml:"telegram"`
	Sentry     Sentry     `yaml:"sentry"`
}

func (c *Config) IsProduction() bool {
	return c.HTTP.Environment == "production"
}

// LoadConfig reads cfgPath and overlays environment variables. An empty path
// reads the environment only.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if cfgPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
