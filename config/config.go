package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Storage   StorageConfig   `yaml:"storage"`
	JWT       JWTConfig       `yaml:"jwt"`
	Admin     AdminConfig     `yaml:"admin"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	Gallery   GalleryConfig   `yaml:"gallery"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StorageConfig struct {
	BasePath      string `yaml:"base_path"`
	PublicBaseURL string `yaml:"public_base_url"`
	MaxFileSize   int64  `yaml:"max_file_size"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Nickname string `yaml:"nickname"`
}

type ThumbnailConfig struct {
	SeekSeconds    float64 `yaml:"seek_seconds"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	Quality        int     `yaml:"quality"`
	FFmpegPath     string  `yaml:"ffmpeg_path"`
	FFprobePath    string  `yaml:"ffprobe_path"`
}

type GalleryConfig struct {
	Categories      []string `yaml:"categories"`
	Heights         []string `yaml:"heights"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
	FeaturedLimit   int      `yaml:"featured_limit"`
}

type RateLimitConfig struct {
	LoginPerMinute int `yaml:"login_per_minute"`
	LoginBurst     int `yaml:"login_burst"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var AppConfig *Config

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Charset == "" {
		cfg.Database.Charset = "utf8mb4"
	}
	if cfg.Storage.PublicBaseURL == "" {
		cfg.Storage.PublicBaseURL = "/media"
	}
	if cfg.Storage.MaxFileSize == 0 {
		cfg.Storage.MaxFileSize = 100 * 1024 * 1024
	}
	if cfg.JWT.ExpireHours == 0 {
		cfg.JWT.ExpireHours = 24
	}
	if cfg.Thumbnail.SeekSeconds == 0 {
		cfg.Thumbnail.SeekSeconds = 1.5
	}
	if cfg.Thumbnail.TimeoutSeconds == 0 {
		cfg.Thumbnail.TimeoutSeconds = 5
	}
	if cfg.Thumbnail.Quality == 0 {
		cfg.Thumbnail.Quality = 85
	}
	if cfg.Thumbnail.FFmpegPath == "" {
		cfg.Thumbnail.FFmpegPath = "ffmpeg"
	}
	if cfg.Thumbnail.FFprobePath == "" {
		cfg.Thumbnail.FFprobePath = "ffprobe"
	}
	if len(cfg.Gallery.Categories) == 0 {
		cfg.Gallery.Categories = []string{
			"Portrait Design",
			"Poster Design",
			"Logo Design",
			"Food Photography",
			"Product Design",
			"Social Media Design",
		}
	}
	if len(cfg.Gallery.Heights) == 0 {
		cfg.Gallery.Heights = []string{"h-48", "h-64", "h-80", "h-96"}
	}
	if cfg.Gallery.CacheTTLSeconds == 0 {
		cfg.Gallery.CacheTTLSeconds = 300
	}
	if cfg.Gallery.FeaturedLimit == 0 {
		cfg.Gallery.FeaturedLimit = 8
	}
	if cfg.RateLimit.LoginPerMinute == 0 {
		cfg.RateLimit.LoginPerMinute = 10
	}
	if cfg.RateLimit.LoginBurst == 0 {
		cfg.RateLimit.LoginBurst = 5
	}
	if cfg.Admin.Nickname == "" {
		cfg.Admin.Nickname = "Admin"
	}
}
