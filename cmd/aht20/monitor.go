package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/aht20"
	"github.com/mklimuk/aht20/cmd/aht20/console"
)

// monitorConfig can be loaded from a YAML file instead of flags, e.g.
//
//	adapter: generic
//	device: /dev/i2c-1
//	interval: 10s
//	retries: 3
type monitorConfig struct {
	Adapter  string `yaml:"adapter"`
	Device   string `yaml:"device"`
	Bus      int    `yaml:"bus"`
	Interval string `yaml:"interval"`
	Retries  int    `yaml:"retries"`
}

var monitorCmd = cli.Command{
	Name:    "monitor",
	Aliases: []string{"mon"},
	Usage:   "read temperature and humidity periodically",
	Flags: append(adapterFlags(),
		&cli.DurationFlag{
			Name:    "interval",
			Aliases: []string{"i"},
			Usage:   "time between reads",
			Value:   10 * time.Second,
		},
		&cli.IntFlag{
			Name:  "retries",
			Usage: "how many times to retry a busy sensor before giving up",
			Value: 3,
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "YAML config file overriding flags",
		},
	),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(c.Context, c.Bool("verbose"))

		interval := c.Duration("interval")
		retries := c.Int("retries")
		if path := c.String("config"); path != "" {
			cfg, err := loadMonitorConfig(path)
			if err != nil {
				return console.Exit(1, "config error: %s", console.Red(err))
			}
			if cfg.Adapter != "" {
				_ = c.Set("adapter", cfg.Adapter)
			}
			if cfg.Device != "" {
				_ = c.Set("device", cfg.Device)
			}
			if cfg.Bus != 0 {
				_ = c.Set("bus", fmt.Sprintf("%d", cfg.Bus))
			}
			if cfg.Interval != "" {
				interval, err = time.ParseDuration(cfg.Interval)
				if err != nil {
					return console.Exit(1, "config error: invalid interval: %s", console.Red(err))
				}
			}
			if cfg.Retries > 0 {
				retries = cfg.Retries
			}
		}

		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer closeBus()

		s := aht20.New(bus)
		if err := s.Init(ctx); err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}

		slog.Info("monitoring sensor", "interval", interval, "retries", retries)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			temp, hum, err := readWithRetry(ctx, s, retries)
			switch {
			case errors.Is(err, aht20.ErrNotCalibrated):
				// calibration dropped, try a fresh init on the next tick
				console.Warnf("sensor lost calibration, re-initializing")
				if err := s.Init(ctx); err != nil {
					console.Errorf("re-initialization failed: %s", console.Red(err))
				}
			case err != nil:
				console.Errorf("read failed: %s", console.Red(err))
			default:
				console.Printf("%s %s  %s %s  %s %s\n",
					console.PictoPin, time.Now().Format(time.DateTime),
					console.PictoThermometer, console.White(temp),
					console.PictoHumidity, console.White(hum))
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return nil
			}
		}
	},
}

// readWithRetry retries busy readings a bounded number of times. The driver
// itself never retries; this is the caller-side policy.
func readWithRetry(ctx context.Context, s *aht20.Sensor, retries int) (float32, float32, error) {
	var temp, hum float32
	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		temp, hum, err = s.GetTempAndHum(ctx)
		if !errors.Is(err, aht20.ErrBusy) {
			return temp, hum, err
		}
		slog.Debug("sensor busy, retrying", "attempt", attempt+1)
	}
	return 0, 0, err
}

func loadMonitorConfig(path string) (*monitorConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	var cfg monitorConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}
	return &cfg, nil
}
