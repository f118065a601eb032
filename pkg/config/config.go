package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Sessions
	SessionStore         string        `mapstructure:"SESSION_STORE"` // "memory" or "redis"
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	// Matchup data
	HomeTeam       string        `mapstructure:"HOME_TEAM"`
	MatchupLatency time.Duration `mapstructure:"MATCHUP_LATENCY"`
	StatsSeed      int64         `mapstructure:"STATS_SEED"` // 0 seeds from the clock

	// Analyst chat
	AnalystAPIKey           string        `mapstructure:"ANALYST_API_KEY"`
	AnalystAPIURL           string        `mapstructure:"ANALYST_API_URL"`
	AnalystModel            string        `mapstructure:"ANALYST_MODEL"`
	AnalystRateLimit        int           `mapstructure:"ANALYST_RATE_LIMIT"` // requests per minute per session
	AnalystTimeout          time.Duration `mapstructure:"ANALYST_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
}

func LoadConfig() (*Config, error) {
	// Promote .env entries into the process environment before viper looks at it
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")

	setDefaults(v)

	// Read from environment
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "5m")

	v.SetDefault("HOME_TEAM", "Raptors")
	v.SetDefault("MATCHUP_LATENCY", "0s")
	v.SetDefault("STATS_SEED", 0)

	v.SetDefault("ANALYST_API_KEY", "")
	v.SetDefault("ANALYST_API_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("ANALYST_MODEL", "anthropic/claude-sonnet-4")
	v.SetDefault("ANALYST_RATE_LIMIT", 10)
	v.SetDefault("ANALYST_TIMEOUT", "60s")
	v.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 3)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := v.GetString("CORS_ORIGINS"); corsStr != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(corsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		config.CorsOrigins = origins
	}

	config.SessionStore = strings.ToLower(strings.TrimSpace(config.SessionStore))
	if config.SessionStore != "memory" && config.SessionStore != "redis" {
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", config.SessionStore)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AnalystEnabled reports whether the chat assistant has credentials to talk to its endpoint.
func (c *Config) AnalystEnabled() bool {
	return c.AnalystAPIKey != ""
}
