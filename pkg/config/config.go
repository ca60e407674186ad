package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Notion      NotionConfig
	Flags       FlagsConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Cache       CacheConfig
	Assignments AssignmentsConfig
	Exports     ExportsConfig
}

// NotionConfig identifies the hosted Notion databases the club data lives in.
type NotionConfig struct {
	Token       string
	MembersDB   string
	OutingsDB   string
	TestsDB     string
	CoxingDB    string
	EventsDB    string
	CallTimeout time.Duration
}

// FlagsConfig points at the river-conditions service publishing the flag status.
type FlagsConfig struct {
	StatusURL string
	CacheTTL  time.Duration
	Timeout   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig holds the per-resource freshness windows for fetched collections.
type CacheConfig struct {
	MembersTTL time.Duration
	OutingsTTL time.Duration
	TestsTTL   time.Duration
	EventsTTL  time.Duration
}

// AssignmentsConfig controls the durable seat-assignment state cache.
type AssignmentsConfig struct {
	Backend    string // "redis" or "sqlite"
	SQLitePath string
	Expiry     time.Duration
	Channel    string
}

// ExportsConfig gates the crew-sheet and availability export endpoints.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Notion = NotionConfig{
		Token:       v.GetString("NOTION_TOKEN"),
		MembersDB:   v.GetString("NOTION_MEMBERS_DB_ID"),
		OutingsDB:   v.GetString("NOTION_OUTINGS_DB_ID"),
		TestsDB:     v.GetString("NOTION_TESTS_DB_ID"),
		CoxingDB:    v.GetString("NOTION_COXING_DB_ID"),
		EventsDB:    v.GetString("NOTION_EVENTS_DB_ID"),
		CallTimeout: parseDuration(v.GetString("NOTION_CALL_TIMEOUT"), 15*time.Second),
	}

	cfg.Flags = FlagsConfig{
		StatusURL: v.GetString("FLAG_STATUS_URL"),
		CacheTTL:  parseDuration(v.GetString("FLAG_CACHE_TTL"), 30*time.Second),
		Timeout:   parseDuration(v.GetString("FLAG_FETCH_TIMEOUT"), 5*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		MembersTTL: parseDuration(v.GetString("MEMBERS_CACHE_TTL"), 60*time.Second),
		OutingsTTL: parseDuration(v.GetString("OUTINGS_CACHE_TTL"), 30*time.Second),
		TestsTTL:   parseDuration(v.GetString("TESTS_CACHE_TTL"), 60*time.Second),
		EventsTTL:  parseDuration(v.GetString("EVENTS_CACHE_TTL"), 60*time.Second),
	}

	cfg.Assignments = AssignmentsConfig{
		Backend:    v.GetString("ASSIGNMENTS_BACKEND"),
		SQLitePath: v.GetString("ASSIGNMENTS_SQLITE_PATH"),
		Expiry:     parseDuration(v.GetString("ASSIGNMENTS_EXPIRY"), 10*time.Minute),
		Channel:    v.GetString("ASSIGNMENTS_CHANNEL"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("NOTION_TOKEN", "")
	v.SetDefault("NOTION_MEMBERS_DB_ID", "")
	v.SetDefault("NOTION_OUTINGS_DB_ID", "")
	v.SetDefault("NOTION_TESTS_DB_ID", "")
	v.SetDefault("NOTION_COXING_DB_ID", "")
	v.SetDefault("NOTION_EVENTS_DB_ID", "")
	v.SetDefault("NOTION_CALL_TIMEOUT", "15s")

	v.SetDefault("FLAG_STATUS_URL", "https://ourcs.co.uk/api/flags/status/isis/")
	v.SetDefault("FLAG_CACHE_TTL", "30s")
	v.SetDefault("FLAG_FETCH_TIMEOUT", "5s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("MEMBERS_CACHE_TTL", "60s")
	v.SetDefault("OUTINGS_CACHE_TTL", "30s")
	v.SetDefault("TESTS_CACHE_TTL", "60s")
	v.SetDefault("EVENTS_CACHE_TTL", "60s")

	v.SetDefault("ASSIGNMENTS_BACKEND", "sqlite")
	v.SetDefault("ASSIGNMENTS_SQLITE_PATH", "./boathouse.db")
	v.SetDefault("ASSIGNMENTS_EXPIRY", "10m")
	v.SetDefault("ASSIGNMENTS_CHANNEL", "boathouse:assignments")

	v.SetDefault("ENABLE_EXPORTS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
