package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort       = 3318
	DefaultPageSize   = 10
	DefaultSessionTTL = 24 * time.Hour
	DefaultSQLiteURL  = "file:quizzes.db?_pragma=foreign_keys(1)"
)

var (
	ErrMissingDatabaseURL = errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	RedisAddr    string
	SessionTTL   time.Duration
	PageSize     int
	Env          string
}

// IsProduction reports whether the app runs with production settings
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// ParseFlags reads CLI flags, then fills anything left unset from the
// environment or an optional config.yaml
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quizzes", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for sessions (empty keeps sessions in memory)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Session lifetime")
	fs.IntVar(&cfg.PageSize, "page-size", 0, "Quizzes per page")
	fs.StringVar(&cfg.Env, "env", "", "Application environment (local, production)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v, err := newViper()
	if err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		cfg.Port = v.GetInt("port")
		if cfg.Port <= 0 {
			return Config{}, errors.New("invalid PORT env variable")
		}
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = v.GetString("database_type")
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = v.GetString("database_url")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, ErrMissingDatabaseURL
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = v.GetString("redis_addr")
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = v.GetDuration("session_ttl")
		if cfg.SessionTTL <= 0 {
			cfg.SessionTTL = DefaultSessionTTL
		}
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = v.GetInt("page_size")
		if cfg.PageSize <= 0 {
			cfg.PageSize = DefaultPageSize
		}
	}
	if cfg.Env == "" {
		cfg.Env = v.GetString("env")
	}

	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_type", DatabaseSQLite)
	v.SetDefault("session_ttl", DefaultSessionTTL)
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("env", "local")

	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("database_type", "DATABASE_TYPE")
	_ = v.BindEnv("redis_addr", "REDIS_ADDR")
	_ = v.BindEnv("session_ttl", "SESSION_TTL")
	_ = v.BindEnv("page_size", "PAGE_SIZE")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return v, nil
}
