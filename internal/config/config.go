package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTP    HTTP
	DB      DB
	Session Session
	Log     Log
}

type HTTP struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DB struct {
	Driver  string
	DSN     string
	Migrate bool
}

type Session struct {
	Secret        string
	TTL           time.Duration
	CookieSecure  bool
	PurgeSchedule string
}

type Log struct {
	Level  string
	Format string
	App    string
}

// Load lee .env (si existe) y luego variables de entorno.
// envFiles vacío => ".env" en el directorio actual.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// .env es opcional: en contenedores todo viene por env.
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_read_timeout", 5*time.Second)
	v.SetDefault("http_write_timeout", 10*time.Second)
	v.SetDefault("db_migrate", true)
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("session_cookie_secure", false)
	v.SetDefault("session_purge_schedule", "@every 15m")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "petcare")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTP: HTTP{
			Addr:         v.GetString("http_addr"),
			ReadTimeout:  v.GetDuration("http_read_timeout"),
			WriteTimeout: v.GetDuration("http_write_timeout"),
		},
		DB: DB{
			Driver:  strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
			DSN:     strings.TrimSpace(v.GetString("db_dsn")),
			Migrate: v.GetBool("db_migrate"),
		},
		Session: Session{
			Secret:        v.GetString("session_secret"),
			TTL:           v.GetDuration("session_ttl"),
			CookieSecure:  v.GetBool("session_cookie_secure"),
			PurgeSchedule: strings.TrimSpace(v.GetString("session_purge_schedule")),
		},
		Log: Log{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			App:    v.GetString("app_name"),
		},
	}

	// Compat con PaaS: sin HTTP_ADDR explícito se usa PORT.
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8080"
		if port := strings.TrimSpace(v.GetString("port")); port != "" {
			cfg.HTTP.Addr = ":" + port
		}
	}

	// DSN sin driver => postgres.
	if cfg.DB.Driver == "" {
		if cfg.DB.DSN != "" {
			cfg.DB.Driver = DriverPostgres
		} else {
			cfg.DB.Driver = DriverMemory
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if c.DB.DSN == "" {
			return fmt.Errorf("config: DB_DSN required for driver %q", c.DB.Driver)
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DB.Driver)
	}

	if c.Session.TTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}

	if strings.TrimSpace(c.Session.Secret) == "" {
		// Con storage en memoria las sesiones mueren con el proceso,
		// así que un secreto efímero alcanza.
		if c.DB.Driver != DriverMemory {
			return errors.New("config: SESSION_SECRET required for persistent storage")
		}
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("config: generate session secret: %w", err)
		}
		c.Session.Secret = hex.EncodeToString(b)
	}
	return nil
}
