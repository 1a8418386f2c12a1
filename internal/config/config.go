package config

type Config interface {
	ClientConfig
	ServerConfig
}

// ClientConfig holds everything the console and API client need at startup.
type ClientConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetDataFolder() string
	GetEnv() string
}

// ServerConfig holds the settings for the development stub server.
type ServerConfig interface {
	GetListenAddr() string
	GetAllowedOrigin() string
	GetSigningSecret() string
	GetAccessTokenTTL() string
	GetRefreshTokenTTL() string
}

type mainConfig struct {
	fileSettings
	EnvVars
}

// New builds the configuration from environment variables only.
func New() Config {
	return &mainConfig{}
}

// NewFromFile builds the configuration from a TOML file, falling back to
// environment variables (and their defaults) for anything the file omits.
func NewFromFile(path string) (Config, error) {
	fs, err := loadFileSettings(path)
	if err != nil {
		return nil, err
	}
	return &mainConfig{fileSettings: fs}, nil
}

func (c *mainConfig) GetAppName() string {
	return firstOf(c.fileSettings.AppName, c.EnvVars.GetAppName())
}

func (c *mainConfig) GetBaseURL() string {
	return firstOf(c.fileSettings.BaseURL, c.EnvVars.GetBaseURL())
}

func (c *mainConfig) GetDataFolder() string {
	return firstOf(c.fileSettings.DataFolder, c.EnvVars.GetDataFolder())
}

func (c *mainConfig) GetListenAddr() string {
	return firstOf(c.fileSettings.ListenAddr, c.EnvVars.GetListenAddr())
}

func (c *mainConfig) GetAllowedOrigin() string {
	return firstOf(c.fileSettings.AllowedOrigin, c.EnvVars.GetAllowedOrigin())
}

func (c *mainConfig) GetSigningSecret() string {
	return firstOf(c.fileSettings.SigningSecret, c.EnvVars.GetSigningSecret())
}

func (c *mainConfig) GetAccessTokenTTL() string {
	return firstOf(c.fileSettings.AccessTokenTTL, c.EnvVars.GetAccessTokenTTL())
}

func (c *mainConfig) GetRefreshTokenTTL() string {
	return firstOf(c.fileSettings.RefreshTokenTTL, c.EnvVars.GetRefreshTokenTTL())
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
