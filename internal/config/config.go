package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	PostgresURL string   `env:"POSTGRES_URL"`
	JWTSecret   string   `env:"JWT_SECRET"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	Session  SessionConfig `envPrefix:"QUIZ_SESSION_"`
	Redis    RedisConfig   `envPrefix:"REDIS_"`
	LLM      LLMConfig
	SMTP     SMTPConfig     `envPrefix:"SMTP_"`
	Supabase SupabaseConfig `envPrefix:"SUPABASE_"`
	Leads    LeadsConfig    `envPrefix:"LEAD_"`
}

type SessionConfig struct {
	Backend string        `env:"BACKEND" envDefault:"memory"` // memory | redis
	TTL     time.Duration `env:"TTL" envDefault:"2h"`
}

type RedisConfig struct {
	Address  string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"10"`
}

type LLMConfig struct {
	Provider       string  `env:"LLM_PROVIDER" envDefault:"openai"` // openai | gemini
	OpenAIKey      string  `env:"OPENAI_API_KEY"`
	OpenAIModel    string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GeminiKey      string  `env:"GEMINI_API_KEY"`
	GeminiModel    string  `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	EmbeddingModel string  `env:"EMBEDDING_MODEL" envDefault:"text-embedding-3-small"`
	MaxTokens      int     `env:"LLM_MAX_TOKENS" envDefault:"500"`
	Temperature    float32 `env:"LLM_TEMPERATURE" envDefault:"0.7"`
}

type SMTPConfig struct {
	Host       string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port       int    `env:"PORT" envDefault:"587"`
	Username   string `env:"USERNAME"`
	Password   string `env:"PASSWORD"`
	From       string `env:"FROM"`
	FromName   string `env:"FROM_NAME" envDefault:"YoungerU"`
	UseSSL     bool   `env:"USE_SSL" envDefault:"false"`
	RequireTLS bool   `env:"REQUIRE_TLS" envDefault:"true"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"https://youngeru.app"`
}

// Enabled reports whether enough is configured to send mail.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

type SupabaseConfig struct {
	URL string `env:"URL"`
	Key string `env:"KEY"`
}

type LeadsConfig struct {
	Sink string `env:"SINK" envDefault:"postgres"` // postgres | supabase
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("QUIZ_SESSION_BACKEND must be memory or redis, got %q", c.Session.Backend)
	}
	switch c.Leads.Sink {
	case "postgres":
	case "supabase":
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return errors.New("LEAD_SINK=supabase requires SUPABASE_URL and SUPABASE_KEY")
		}
	default:
		return fmt.Errorf("LEAD_SINK must be postgres or supabase, got %q", c.Leads.Sink)
	}
	if c.Session.TTL <= 0 {
		return errors.New("QUIZ_SESSION_TTL must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.Environment == "production" }
