package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/qendev/mars_realestate/internal/app"
	"github.com/qendev/mars_realestate/internal/config"
	"github.com/qendev/mars_realestate/internal/marsapi"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "mars_realestate",
		Usage:   "Fetch the Mars real-estate listing and publish its status",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)
			logLevel.Set(cfg.App.LogLevel)

			return app.New(log, cfg, os.Stdout).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "log-level",
			Usage:     "Set log level (debug, info, warn, error)",
			Value:     "debug",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.log_level", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateLogLevel,
		},
		&cli.BoolFlag{
			Name:    "once",
			Usage:   "Fetch once, print the status and exit instead of serving it over HTTP",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.once", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "base-url",
			Aliases:   []string{"b"},
			Usage:     "Set Mars real-estate service base URL",
			Value:     marsapi.DefaultBaseURL,
			Sources:   cli.NewValueSourceChain(yaml.YAML("client.base_url", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateBaseURL,
		},
		&cli.DurationFlag{
			Name:    "request-timeout",
			Aliases: []string{"t"},
			Usage:   "Set properties request timeout",
			Value:   marsapi.DefaultTimeout,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.request_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.Int64Flag{
			Name:    "max-body-bytes",
			Usage:   "Set maximum accepted response body size",
			Value:   marsapi.DefaultMaxBodyBytes,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.max_body_bytes", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "user-agent",
			Usage:   "Set User-Agent header of the properties request",
			Value:   "mars_realestate/" + version,
			Sources: cli.NewValueSourceChain(yaml.YAML("client.user_agent", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}

	return nil
}

func validateLogLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
