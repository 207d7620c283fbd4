package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading a .env
// file first. A missing .env file is not an error.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Warn("no env file found, using system environment variables", "path", path)
		} else {
			logger.Info("environment variables loaded", "path", path)
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("app config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"redis", cfg.Redis.Addr,
		"inflation_api_url", cfg.Inflation.ApiUrl,
		"inflation_http_timeout", cfg.Inflation.HTTPTimeout,
		"scan_cron", cfg.Inflation.ScanCron,
		"goal_cache_ttl", cfg.GoalTTL(),
	)
	return &cfg, nil
}

// maskValue hides all but the first few characters of a sensitive value.
func maskValue(v string) string {
	const visible = 8
	if len(v) <= visible {
		return "****"
	}
	return v[:visible] + "****"
}
