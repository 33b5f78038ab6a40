package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	DB          DBConfig
	S3          S3Config
	Redis       RedisConfig
	Researcher  ResearcherConfig
	OCR         ProviderConfig
	Translation ProviderConfig
	Analysis    AnalysisConfig
	CORS        CORSConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for label image storage.
type S3Config struct {
	Enabled        bool   `mapstructure:"enabled"`
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	MaxImageSizeMB int64  `mapstructure:"max_image_size_mb"`
	PresignExpiry  int64  `mapstructure:"presign_expiry"`
}

// RedisConfig holds settings for the optional research-result cache.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ResearcherConfig holds settings for the knowledge researcher provider.
type ResearcherConfig struct {
	Provider    string `mapstructure:"provider"`
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxInFlight int    `mapstructure:"max_in_flight"`
}

// Timeout returns the per-call research timeout.
func (r *ResearcherConfig) Timeout() time.Duration {
	if r.TimeoutSecs <= 0 {
		return 20 * time.Second
	}
	return time.Duration(r.TimeoutSecs) * time.Second
}

// ProviderConfig holds settings for an external text provider (OCR or
// translation): "noop" or "remote" with an HTTP endpoint.
type ProviderConfig struct {
	Provider    string `mapstructure:"provider"`
	Endpoint    string `mapstructure:"endpoint"`
	APIKey      string `mapstructure:"api_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// AnalysisConfig holds the tunable policy values of the scoring pipeline.
type AnalysisConfig struct {
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
	MinConfidence  float64 `mapstructure:"min_confidence"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LABELSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "labelscan")
	v.SetDefault("db.password", "labelscan_secret")
	v.SetDefault("db.name", "labelscan_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "labelscan-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_image_size_mb", 16)
	v.SetDefault("s3.presign_expiry", 3600)

	// Redis defaults (research cache off unless configured)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "168h")

	// Researcher defaults
	v.SetDefault("researcher.provider", "openai_compatible")
	v.SetDefault("researcher.base_url", "")
	v.SetDefault("researcher.api_key", "")
	v.SetDefault("researcher.model", "llama-3.3-70b-instruct")
	v.SetDefault("researcher.timeout_secs", 20)
	v.SetDefault("researcher.max_in_flight", 4)

	// OCR / translation providers
	v.SetDefault("ocr.provider", "noop")
	v.SetDefault("ocr.endpoint", "")
	v.SetDefault("ocr.timeout_secs", 30)
	v.SetDefault("translation.provider", "noop")
	v.SetDefault("translation.endpoint", "")
	v.SetDefault("translation.timeout_secs", 15)

	// Analysis policy defaults
	v.SetDefault("analysis.fuzzy_threshold", 0.78)
	v.SetDefault("analysis.min_confidence", 0.3)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Viper delivers comma-separated env lists as a single string.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
