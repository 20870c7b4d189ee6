package config

// EnvPrefix is the envconfig prefix shared by every setting.
const EnvPrefix = "ALQUIGO"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "ALQUIGO_APP_ENV"
	EnvPort   = "ALQUIGO_APP_PORT"

	EnvDBDSN    = "ALQUIGO_DB_DSN"
	EnvDBHost   = "ALQUIGO_DB_HOST"
	EnvDBUser   = "ALQUIGO_DB_USER"
	EnvDBName   = "ALQUIGO_DB_NAME"
	EnvRedisURL = "ALQUIGO_REDIS_URL"

	EnvJWTSecret     = "ALQUIGO_JWT_SECRET"
	EnvJWTIssuer     = "ALQUIGO_JWT_ISSUER"
	EnvJWTExpMinutes = "ALQUIGO_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
