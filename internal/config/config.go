package config

import (
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type (
	Config struct {
		API
		Database
	}

	API struct {
		BaseURL   string
		Timeout   time.Duration
		UserAgent string
	}
	Database struct {
		Path string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("quran_api_base_url", DefaultAPIBaseURL)
	v.SetDefault("quran_api_timeout", "10s")
	v.SetDefault("quran_api_user_agent", "")
	v.SetDefault("database_path", defaultDatabasePath())

	return &Config{
		API: API{
			BaseURL:   v.GetString("QURAN_API_BASE_URL"),
			Timeout:   v.GetDuration("QURAN_API_TIMEOUT"),
			UserAgent: v.GetString("QURAN_API_USER_AGENT"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}

// defaultDatabasePath resolves the per-device data location, falling back
// to the working directory when no XDG data home is available.
func defaultDatabasePath() string {
	path, err := xdg.DataFile("mushaf/mushaf.db")
	if err != nil {
		return DefaultDatabaseFile
	}
	return path
}
