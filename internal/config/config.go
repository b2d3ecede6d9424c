package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Admin  AdminConfig
	SMTP   SMTPConfig
	Cache  CacheConfig
	Quiz   QuizConfig
}

type AppConfig struct {
	Name      string
	PublicURL string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins string
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	URL             string // DATABASE_URL wins over the discrete fields when set
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Env   string
	Level string
}

type AdminConfig struct {
	Password       string
	JWTSecret      string
	TokenTTL       time.Duration
	LoginRateLimit int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type CacheConfig struct {
	StatsTTL time.Duration
}

type QuizConfig struct {
	AllowRetakes bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Via Propósito")
	v.SetDefault("app.public_url", "http://localhost:3000")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.idle_timeout", 20)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "via_proposito")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 300)
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("admin.token_ttl", 8)
	v.SetDefault("admin.login_rate_limit", 10)
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("cache.stats_ttl", 60)
	v.SetDefault("quiz.allow_retakes", true)
}

// LoadConfig reads config.yaml (optional) and applies environment overrides.
// Nested keys map to env vars with "." replaced by "_", e.g. ADMIN_PASSWORD.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		App: AppConfig{
			Name:      v.GetString("app.name"),
			PublicURL: v.GetString("app.public_url"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		DB: DBConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			URL:             v.GetString("database_url"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: time.Duration(v.GetInt("db.conn_max_lifetime")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Admin: AdminConfig{
			Password:       v.GetString("admin.password"),
			JWTSecret:      v.GetString("admin.jwt_secret"),
			TokenTTL:       time.Duration(v.GetInt("admin.token_ttl")) * time.Hour,
			LoginRateLimit: v.GetInt("admin.login_rate_limit"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			Username: v.GetString("smtp.username"),
			Password: v.GetString("smtp.password"),
			From:     v.GetString("smtp.from"),
		},
		Cache: CacheConfig{
			StatsTTL: time.Duration(v.GetInt("cache.stats_ttl")) * time.Second,
		},
		Quiz: QuizConfig{
			AllowRetakes: v.GetBool("quiz.allow_retakes"),
		},
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	return cfg
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("admin.jwt_secret (ADMIN_JWT_SECRET) must be set")
	}
	if len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin.jwt_secret must be at least 32 bytes long")
	}
	if c.Admin.TokenTTL <= 0 {
		return fmt.Errorf("admin.token_ttl must be positive")
	}
	return nil
}

// GetDSN returns the Postgres connection string.
func (c *Config) GetDSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     "/" + c.DB.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DB.SSLMode),
	}
	return dsn.String()
}
