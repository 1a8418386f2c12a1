package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileSettings mirrors the recognized keys of the optional TOML config file.
// An empty value means "not set" and defers to the environment.
type fileSettings struct {
	AppName         string `toml:"app_name"`
	BaseURL         string `toml:"base_url"`
	DataFolder      string `toml:"data_folder"`
	ListenAddr      string `toml:"listen_addr"`
	AllowedOrigin   string `toml:"allowed_origin"`
	SigningSecret   string `toml:"signing_secret"`
	AccessTokenTTL  string `toml:"access_token_ttl"`
	RefreshTokenTTL string `toml:"refresh_token_ttl"`
}

func loadFileSettings(path string) (fileSettings, error) {
	var fs fileSettings
	data, err := os.ReadFile(path)
	if err != nil {
		return fs, errors.Wrap(err, "[loadFileSettings] read config file")
	}
	if err := toml.Unmarshal(data, &fs); err != nil {
		return fs, errors.Wrap(err, "[loadFileSettings] parse config file")
	}
	return fs, nil
}
