package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Crypto     Crypto
	Notifier   Notifier
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

// Crypto holds the symmetric keyring for message content at rest.
// Keys maps a version tag to a base64-encoded 32-byte key; CurrentVersion
// selects the key used for new messages. Old versions stay listed so
// history encrypted under them remains readable.
type Crypto struct {
	Keys           map[string]string
	CurrentVersion int
}

type Notifier struct {
	BufferSize int
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Notifier.BufferSize <= 0 {
		c.Notifier.BufferSize = 64
	}
	return &c, nil
}
