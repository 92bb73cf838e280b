package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const DefaultPath = "./config/config.ini"

var DefaultSlots = []string{"11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

type (
	Config struct {
		API struct {
			URL     string
			Token   string
			Timeout int
			RPS     int
		}
		RESERVATION struct {
			Timezone        string
			LeadTimeMinutes int
			Slot            []string
		}
		STORAGE struct {
			Driver string
			DB     string
		}
		PAYMENT struct {
			CallbackPort  int
			SnapURL       string
			WidgetTimeout int
			DefaultMethod string
		}
		NOTIFICATION struct {
			Interval int
		}
		TELEGRAM struct {
			BotToken string
			ChatID   int64
			Debug    int
		}
		LOG struct {
			Debug int
		}
	}
)

var cfg *Config
var once sync.Once

// GetConfig reads the configuration once; CONFIG_PATH overrides the default location.
func GetConfig() *Config {
	once.Do(func() {
		err := os.MkdirAll("logs", 0770)
		if err != nil {
			fmt.Println(err)
		}

		var out io.Writer = os.Stdout
		file, err := os.OpenFile("logs/config.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			fmt.Println(err)
		} else {
			out = io.MultiWriter(file, os.Stdout)
		}

		logger := log.New(out, "MAIN ", log.Ldate|log.Ltime|log.Lshortfile)
		logger.Print("Config:>Read application configurations")

		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = DefaultPath
		}

		cfg, err = Load(path)
		if err != nil {
			logger.Fatalf("Config:>Failed to parse gcfg data: %s", err)
		}
		logger.Print("Config:>Config is read")
	})

	return cfg
}

// Load reads an ini file, applies environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	c := new(Config)
	if err := gcfg.ReadFileInto(c, path); err != nil {
		return nil, errors.Wrapf(err, "failed gcfg.ReadFileInto(%s)", path)
	}
	c.applyEnv()
	c.applyDefaults()
	if c.API.URL == "" {
		return nil, errors.New("API.URL is not set")
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RESTO_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("RESTO_API_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("RESTO_TELEGRAM_TOKEN"); v != "" {
		c.TELEGRAM.BotToken = v
	}
}

func (c *Config) applyDefaults() {
	if c.API.Timeout <= 0 {
		c.API.Timeout = 30
	}
	if c.API.RPS <= 0 {
		c.API.RPS = 5
	}
	if c.RESERVATION.Timezone == "" {
		c.RESERVATION.Timezone = "Asia/Jakarta"
	}
	if c.RESERVATION.LeadTimeMinutes <= 0 {
		c.RESERVATION.LeadTimeMinutes = 15
	}
	if len(c.RESERVATION.Slot) == 0 {
		c.RESERVATION.Slot = append([]string(nil), DefaultSlots...)
	}
	if c.STORAGE.Driver == "" {
		c.STORAGE.Driver = "sqlite"
	}
	if c.STORAGE.DB == "" {
		c.STORAGE.DB = "resto.db"
	}
	if c.PAYMENT.CallbackPort <= 0 {
		c.PAYMENT.CallbackPort = 8089
	}
	if c.PAYMENT.SnapURL == "" {
		c.PAYMENT.SnapURL = "https://app.sandbox.midtrans.com/snap/v2/vtweb/"
	}
	if c.PAYMENT.WidgetTimeout <= 0 {
		c.PAYMENT.WidgetTimeout = 900
	}
	if c.PAYMENT.DefaultMethod == "" {
		c.PAYMENT.DefaultMethod = "midtrans"
	}
	if c.NOTIFICATION.Interval <= 0 {
		c.NOTIFICATION.Interval = 30
	}
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.RESERVATION.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed time.LoadLocation(%s)", c.RESERVATION.Timezone)
	}
	return loc, nil
}

func (c *Config) LeadTime() time.Duration {
	return time.Duration(c.RESERVATION.LeadTimeMinutes) * time.Minute
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.NOTIFICATION.Interval) * time.Second
}

func (c *Config) WidgetTimeout() time.Duration {
	return time.Duration(c.PAYMENT.WidgetTimeout) * time.Second
}
