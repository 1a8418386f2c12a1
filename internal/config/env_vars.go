package config

import "os"

const (
	appNameVar       = "APP_NAME"
	baseURLVar       = "BASE_URL"
	folderEnvVar     = "FOLDER"
	listenAddrVar    = "LISTEN_ADDR"
	originVar        = "ALLOWED_ORIGIN"
	signingSecretVar = "SIGNING_SECRET"
	accessTTLVar     = "ACCESS_TOKEN_TTL"
	refreshTTLVar    = "REFRESH_TOKEN_TTL"
)

type EnvVars struct{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "PayCanvas Console")
}

// GetBaseURL returns the backend origin used for all API requests.
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8080")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func (EnvVars) GetListenAddr() string {
	return GetEnv(listenAddrVar, ":8080")
}

func (EnvVars) GetAllowedOrigin() string {
	return GetEnv(originVar, "http://localhost:5173")
}

func (EnvVars) GetSigningSecret() string {
	return GetEnv(signingSecretVar, "paycanvas-dev-secret")
}

func (EnvVars) GetAccessTokenTTL() string {
	return GetEnv(accessTTLVar, "15m")
}

func (EnvVars) GetRefreshTokenTTL() string {
	return GetEnv(refreshTTLVar, "720h")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
