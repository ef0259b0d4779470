package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is read from the YAML file given with -config.
type Config struct {
	Frontend string `yaml:"frontend"`
	Window   struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`
	Star struct {
		Size float64 `yaml:"size"`
	} `yaml:"star"`
	Sound struct {
		Enabled    bool    `yaml:"enabled"`
		Frequency  float64 `yaml:"frequency"`
		DurationMs int     `yaml:"durationMs"`
	} `yaml:"sound"`
	Api struct {
		Listen string `yaml:"listen"`
		Debug  bool   `yaml:"debug"`
	} `yaml:"api"`
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Command string `yaml:"command"`
			Status  string `yaml:"status"`
		} `yaml:"topics"`
		StatusIntervalMs int `yaml:"statusIntervalMs"`
	} `yaml:"mqtt"`
}

// DefaultConfig runs the window frontend with no network surfaces.
func DefaultConfig() Config {
	var c Config
	c.Frontend = "window"
	c.Window.Width = 480
	c.Window.Height = 800
	c.Window.Title = "Property Animation"
	c.Star.Size = 96
	c.Sound.Enabled = false
	c.Sound.Frequency = 880
	c.Sound.DurationMs = 40
	c.Mqtt.ClientID = "propanim"
	c.Mqtt.Topics.Command = "propanim/command"
	c.Mqtt.Topics.Status = "propanim/status"
	c.Mqtt.StatusIntervalMs = 1000
	return c
}

// LoadConfig decodes the YAML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values that would make the screen unusable.
func (c Config) Validate() error {
	switch c.Frontend {
	case "window", "terminal":
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Star.Size <= 0 {
		return fmt.Errorf("star size %v", c.Star.Size)
	}
	if c.Mqtt.URL != "" && c.Mqtt.StatusIntervalMs <= 0 {
		return fmt.Errorf("mqtt status interval %dms", c.Mqtt.StatusIntervalMs)
	}
	return nil
}
