package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Upstream struct {
	OrdersURL      string `yaml:"orders_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type App struct {
	LogLevel string   `yaml:"log_level"`
	HTTP     HTTP     `yaml:"http"`
	Upstream Upstream `yaml:"upstream"`
}

func defaults() App {
	return App{
		LogLevel: "info",
		HTTP: HTTP{
			Addr: ":8080",
		},
		Upstream: Upstream{
			OrdersURL:      "https://reactasty.apps.huel.io/api/customer/orders",
			TimeoutSeconds: 10,
		},
	}
}

// Load reads the YAML config at path on top of the defaults, then applies
// environment overrides. A missing file is fine; a broken one is not.
func Load(path string) (App, error) {
	a := defaults()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &a); err != nil {
			return App{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// defaults + env only
	default:
		return App{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&a)

	if a.Upstream.OrdersURL == "" {
		return App{}, errors.New("invalid config: upstream orders_url is required")
	}
	if a.Upstream.TimeoutSeconds <= 0 {
		return App{}, errors.New("invalid config: upstream timeout_seconds must be positive")
	}
	return a, nil
}

func applyEnv(a *App) {
	if v := os.Getenv("ORDER_HISTORY_LOG_LEVEL"); v != "" {
		a.LogLevel = v
	}
	if v := os.Getenv("ORDER_HISTORY_HTTP_ADDR"); v != "" {
		a.HTTP.Addr = v
	}
	if v := os.Getenv("ORDER_HISTORY_ORDERS_URL"); v != "" {
		a.Upstream.OrdersURL = v
	}
	if v := os.Getenv("ORDER_HISTORY_UPSTREAM_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			a.Upstream.TimeoutSeconds = n
		}
	}
}

func (u Upstream) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}
