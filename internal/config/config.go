package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Client
	HTTP
}

type App struct {
	LogLevel slog.Level
	Once     bool
}

type Client struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	UserAgent      string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	var level slog.Level
	// validated by the flag, falls back to info otherwise
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		level = slog.LevelInfo
	}

	return &Config{
		App: App{
			LogLevel: level,
			Once:     cmd.Bool("once"),
		},
		Client: Client{
			BaseURL:        cmd.String("base-url"),
			RequestTimeout: cmd.Duration("request-timeout"),
			MaxBodyBytes:   cmd.Int64("max-body-bytes"),
			UserAgent:      cmd.String("user-agent"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
