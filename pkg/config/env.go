package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "TENDERMARKET"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "TENDERMARKET_APP_ENV"
	EnvPort     = "TENDERMARKET_APP_PORT"
	EnvLogLevel = "TENDERMARKET_LOG_LEVEL"

	EnvDBDSN  = "TENDERMARKET_DB_DSN"
	EnvDBHost = "TENDERMARKET_DB_HOST"
	EnvDBUser = "TENDERMARKET_DB_USER"
	EnvDBName = "TENDERMARKET_DB_NAME"

	EnvRedisURL = "TENDERMARKET_REDIS_URL"

	EnvJWTSecret  = "TENDERMARKET_JWT_SECRET"
	EnvJWTIssuer  = "TENDERMARKET_JWT_ISSUER"
	EnvJWTExpMins = "TENDERMARKET_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
