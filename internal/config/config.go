// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL        string `json:"url"`
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
		LogLevel   string `json:"log_level"`
	} `json:"database"`
	Server struct {
		Port           string        `json:"port"`
		ReadTimeout    time.Duration `json:"read_timeout"`
		WriteTimeout   time.Duration `json:"write_timeout"`
		RequestTimeout time.Duration `json:"request_timeout"`
		AllowedOrigins []string      `json:"allowed_origins"`
	} `json:"server"`
	Redis struct {
		Addr     string        `json:"addr"`
		Password string        `json:"password"`
		DB       int           `json:"db"`
		TTL      time.Duration `json:"ttl"`
	} `json:"redis"`
	Features struct {
		FeaturedIdeas bool `json:"featured_ideas"`
		Challenges    bool `json:"challenges"`
	} `json:"features"`
	Contact struct {
		EnableRecaptcha bool          `json:"enable_recaptcha"`
		RecaptchaSecret string        `json:"recaptcha_secret"`
		RecaptchaURL    string        `json:"recaptcha_url"`
		NotifyTo        string        `json:"notify_to"`
		RateLimit       int           `json:"rate_limit"`
		RateWindow      time.Duration `json:"rate_window"`
	} `json:"contact"`
	Upload struct {
		Dir      string `json:"dir"`
		MaxBytes int64  `json:"max_bytes"`
	} `json:"upload"`
	Admin struct {
		JWTSecret string `json:"jwt_secret"`
	} `json:"admin"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "thinknest")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("SERVER_PORT", "4000")
	v.SetDefault("SERVER_REQUEST_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("FEATURED_IDEAS_ENABLED", true)
	v.SetDefault("CHALLENGES_ENABLED", true)
	v.SetDefault("CONTACT_ENABLE_RECAPTCHA", false)
	v.SetDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault("CONTACT_RATE_LIMIT", 5)
	v.SetDefault("CONTACT_RATE_WINDOW", "1m")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 30<<20)
	v.SetDefault("SMTP_PORT", 587)

	cfg := &Config{}

	// Database configuration
	cfg.Database.URL = v.GetString("DATABASE_URL")
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetString("DB_PORT")
	cfg.Database.User = v.GetString("DB_USER")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Name = v.GetString("DB_NAME")
	cfg.Database.SSLMode = v.GetString("DB_SSLMODE")
	cfg.Database.SearchPath = v.GetString("DB_SCHEMA")
	cfg.Database.LogLevel = v.GetString("DB_LOG_LEVEL")

	// Server configuration
	cfg.Server.Port = v.GetString("SERVER_PORT")
	if port := v.GetString("PORT"); port != "" {
		cfg.Server.Port = port
	}
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 60
	cfg.Server.RequestTimeout = v.GetDuration("SERVER_REQUEST_TIMEOUT")
	cfg.Server.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	// Cache
	cfg.Redis.Addr = v.GetString("REDIS_ADDR")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.TTL = v.GetDuration("CACHE_TTL")

	// Module toggles
	cfg.Features.FeaturedIdeas = v.GetBool("FEATURED_IDEAS_ENABLED")
	cfg.Features.Challenges = v.GetBool("CHALLENGES_ENABLED")

	// Contact form
	cfg.Contact.EnableRecaptcha = v.GetBool("CONTACT_ENABLE_RECAPTCHA")
	cfg.Contact.RecaptchaSecret = v.GetString("RECAPTCHA_SECRET")
	cfg.Contact.RecaptchaURL = v.GetString("RECAPTCHA_VERIFY_URL")
	cfg.Contact.NotifyTo = v.GetString("CONTACT_NOTIFY_TO")
	cfg.Contact.RateLimit = v.GetInt("CONTACT_RATE_LIMIT")
	cfg.Contact.RateWindow = v.GetDuration("CONTACT_RATE_WINDOW")

	// Uploads
	cfg.Upload.Dir = v.GetString("UPLOAD_DIR")
	cfg.Upload.MaxBytes = v.GetInt64("UPLOAD_MAX_BYTES")

	cfg.Admin.JWTSecret = v.GetString("ADMIN_JWT_SECRET")

	// Mail
	cfg.Sendgrid.APIKey = v.GetString("SENDGRID_API_KEY")
	cfg.Sendgrid.From = v.GetString("SENDGRID_FROM")
	cfg.SMTP.Host = v.GetString("SMTP_HOST")
	cfg.SMTP.Port = v.GetInt("SMTP_PORT")
	cfg.SMTP.Username = v.GetString("SMTP_USER")
	cfg.SMTP.Password = v.GetString("SMTP_PASS")
	cfg.SMTP.From = v.GetString("SMTP_FROM")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("config: SERVER_PORT must not be empty")
	}
	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL: %w", err)
		}
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("config: UPLOAD_MAX_BYTES must be positive")
	}
	if c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < 16 {
		return errors.New("config: ADMIN_JWT_SECRET must be at least 16 characters")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* settings.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// RecaptchaActive reports whether contact submissions must carry a verified token.
func (c *Config) RecaptchaActive() bool {
	return c.Contact.EnableRecaptcha && c.Contact.RecaptchaSecret != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
