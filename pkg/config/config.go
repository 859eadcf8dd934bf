package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Service   ServiceConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Analytics AnalyticsConfig
	Snapshot  SnapshotConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TENDERMARKET_APP_ENV" required:"true"`
	Port         string `envconfig:"TENDERMARKET_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TENDERMARKET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TENDERMARKET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"TENDERMARKET_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"TENDERMARKET_DB_DSN"`
	Driver string `envconfig:"TENDERMARKET_DB_DRIVER" default:"postgres"`

	AutoMigrate bool `envconfig:"TENDERMARKET_DB_AUTO_MIGRATE" default:"false"`

	LegacyHost     string `envconfig:"TENDERMARKET_DB_HOST"`
	LegacyPort     int    `envconfig:"TENDERMARKET_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TENDERMARKET_DB_USER"`
	LegacyPassword string `envconfig:"TENDERMARKET_DB_PASSWORD"`
	LegacyName     string `envconfig:"TENDERMARKET_DB_NAME"`
	LegacySSLMode  string `envconfig:"TENDERMARKET_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TENDERMARKET_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TENDERMARKET_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TENDERMARKET_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TENDERMARKET_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TENDERMARKET_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TENDERMARKET_REDIS_ADDR"`
	Password     string        `envconfig:"TENDERMARKET_REDIS_PASSWORD"`
	DB           int           `envconfig:"TENDERMARKET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TENDERMARKET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TENDERMARKET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TENDERMARKET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TENDERMARKET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TENDERMARKET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TENDERMARKET_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TENDERMARKET_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"TENDERMARKET_JWT_EXPIRATION_MINUTES" required:"true"`
}

// AnalyticsConfig tunes the aggregation service and its result cache.
type AnalyticsConfig struct {
	CacheTTL        time.Duration `envconfig:"TENDERMARKET_ANALYTICS_CACHE_TTL" default:"5m"`
	CacheMaxEntries int           `envconfig:"TENDERMARKET_ANALYTICS_CACHE_MAX_ENTRIES" default:"256"`
	LookbackDays    int           `envconfig:"TENDERMARKET_ANALYTICS_LOOKBACK_DAYS" default:"90"`
}

// SnapshotConfig tunes the dashboard snapshot worker.
type SnapshotConfig struct {
	Interval time.Duration `envconfig:"TENDERMARKET_SNAPSHOT_INTERVAL" default:"10m"`
	TTL      time.Duration `envconfig:"TENDERMARKET_SNAPSHOT_TTL" default:"30m"`
	LockTTL  time.Duration `envconfig:"TENDERMARKET_SNAPSHOT_LOCK_TTL" default:"9m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
