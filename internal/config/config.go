package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Env  string
	Port string
}

type BackendCfg struct {
	// BaseURL is the root of the remote dashboard API, e.g.
	// https://api.pilot-dashboard.example.com/api/v1
	BaseURL    string
	TimeoutSec int
}

type SessionCfg struct {
	// Store selects the session backend: "memory" or "redis".
	Store     string
	RedisAddr string
	TTL       time.Duration
}

type UICfg struct {
	// SearchDebounce is the delay between the last keystroke in a list
	// search box and the fetch it triggers.
	SearchDebounce time.Duration
	DefaultLimit   int
	RateLimitRPS   int
}

type Cfg struct {
	App     AppCfg
	Backend BackendCfg
	Session SessionCfg
	UI      UICfg
}

// Load reads configuration from .env (if present) and the process
// environment. It fails fast on required settings.
func Load() (Cfg, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8090")
	viper.SetDefault("BACKEND_TIMEOUT_SEC", 10)
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_TTL_HOURS", 12)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 350)
	viper.SetDefault("LIST_DEFAULT_LIMIT", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 5)

	cfg := Cfg{
		App: AppCfg{
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		Backend: BackendCfg{
			BaseURL:    strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/"),
			TimeoutSec: viper.GetInt("BACKEND_TIMEOUT_SEC"),
		},
		Session: SessionCfg{
			Store:     viper.GetString("SESSION_STORE"),
			RedisAddr: viper.GetString("REDIS_ADDR"),
			TTL:       time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
		UI: UICfg{
			SearchDebounce: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
			DefaultLimit:   viper.GetInt("LIST_DEFAULT_LIMIT"),
			RateLimitRPS:   viper.GetInt("RATE_LIMIT_RPS"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return Cfg{}, ErrMissingBackendURL
	}
	if cfg.Session.Store == "redis" && cfg.Session.RedisAddr == "" {
		return Cfg{}, ErrMissingRedisAddr
	}

	return cfg, nil
}
