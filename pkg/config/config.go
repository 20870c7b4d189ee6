package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Cart          CartConfig
	Checkout      CheckoutConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ALQUIGO_APP_ENV" required:"true"`
	Port         string `envconfig:"ALQUIGO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ALQUIGO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ALQUIGO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ALQUIGO_DB_DSN"`
	Driver string `envconfig:"ALQUIGO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ALQUIGO_DB_HOST"`
	LegacyPort     int    `envconfig:"ALQUIGO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ALQUIGO_DB_USER"`
	LegacyPassword string `envconfig:"ALQUIGO_DB_PASSWORD"`
	LegacyName     string `envconfig:"ALQUIGO_DB_NAME"`
	LegacySSLMode  string `envconfig:"ALQUIGO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ALQUIGO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ALQUIGO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ALQUIGO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ALQUIGO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ALQUIGO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ALQUIGO_REDIS_ADDR"`
	Password     string        `envconfig:"ALQUIGO_REDIS_PASSWORD"`
	DB           int           `envconfig:"ALQUIGO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ALQUIGO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ALQUIGO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ALQUIGO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ALQUIGO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ALQUIGO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"ALQUIGO_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"ALQUIGO_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"ALQUIGO_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"ALQUIGO_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"ALQUIGO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ALQUIGO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ALQUIGO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ALQUIGO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ALQUIGO_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"ALQUIGO_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// CartConfig tunes the durable cart slot.
type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"ALQUIGO_CART_SNAPSHOT_TTL" default:"720h"`
}

// CheckoutConfig carries the flat order-level pricing policy. Shipping is
// free; tax is a single multiplicative factor applied to the cart subtotal.
type CheckoutConfig struct {
	TaxRate float64 `envconfig:"ALQUIGO_CHECKOUT_TAX_RATE" default:"0.10"`
}

func (c CheckoutConfig) validate() error {
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("checkout tax rate %v out of range [0,1)", c.TaxRate)
	}
	return nil
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ALQUIGO_AUTO_MIGRATE" default:"false"`
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
