package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gabrielcapilla/radiogo/internal/domain"
	"github.com/gabrielcapilla/radiogo/internal/logger"
	"github.com/gabrielcapilla/radiogo/internal/ports"

	"github.com/spf13/viper"
)

type ViperConfigService struct {
	v *viper.Viper
}

// DefaultDir returns <UserConfigDir>/radiogo, or "" when it cannot be found.
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Could not find user config directory, using current directory")
		return ""
	}
	return filepath.Join(configDir, "radiogo")
}

// NewViperConfigService searches config.yml in dir, then in the working directory.
func NewViperConfigService(dir string) ports.ConfigService {
	v := viper.New()

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Log.Error().Err(err).Msg("Could not create radiogo config directory")
		} else {
			v.AddConfigPath(dir)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	v.SetDefault("mpvSocketPath", "/tmp/radiogo-mpv.sock")
	v.SetDefault("catalogPath", "")
	v.SetDefault("historyLimit", 50)
	v.SetDefault("playback.defaultVolume", domain.DefaultVolume)
	v.SetDefault("playback.cueFirstStation", true)
	v.SetDefault("notifications.durationMs", 5000)
	v.SetDefault("http.listen", "")
	v.SetDefault("log.level", "info")

	return &ViperConfigService{v: v}
}

func (s *ViperConfigService) Load() (domain.Config, error) {
	var cfg domain.Config

	if err := s.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			logger.Log.Info().Msg("Config file not found, creating with default values.")
			if err := s.v.SafeWriteConfig(); err != nil {
				return cfg, err
			}
		} else {
			return cfg, err
		}
	}

	if err := s.v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	cfg.Playback.DefaultVolume = domain.ClampVolume(cfg.Playback.DefaultVolume)
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}

	return cfg, nil
}
