package domain

import "time"

type Config struct {
	MpvSocketPath string             `mapstructure:"mpvSocketPath"`
	CatalogPath   string             `mapstructure:"catalogPath"`
	HistoryLimit  int                `mapstructure:"historyLimit"`
	Playback      PlaybackConfig     `mapstructure:"playback"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	HTTP          HTTPConfig         `mapstructure:"http"`
	Log           LogConfig          `mapstructure:"log"`
}

type PlaybackConfig struct {
	DefaultVolume   int  `mapstructure:"defaultVolume"`
	CueFirstStation bool `mapstructure:"cueFirstStation"`
}

type NotificationConfig struct {
	DurationMs int `mapstructure:"durationMs"`
}

func (c NotificationConfig) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

type HTTPConfig struct {
	Listen string `mapstructure:"listen"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
