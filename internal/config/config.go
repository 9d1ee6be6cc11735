// Package config loads the YAML configuration of the bubble tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/conversation"
	"honnef.co/go/bubble/render"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Colors are hex colors as accepted by [render.ParseColor].
type Colors struct {
	Sent         string `yaml:"sent"`
	SentText     string `yaml:"sent_text"`
	Received     string `yaml:"received"`
	ReceivedText string `yaml:"received_text"`
	Background   string `yaml:"background"`
}

type Config struct {
	Style  bubble.Style  `yaml:"style"`
	Layout render.Layout `yaml:"layout"`
	Colors Colors        `yaml:"colors"`
	// Expiry is how long submitted chat messages stay visible. Zero keeps
	// them forever.
	Expiry time.Duration `yaml:"expiry"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := render.DefaultPalette
	return &Config{
		Style:  bubble.DefaultStyle,
		Layout: render.DefaultLayout,
		Colors: Colors{
			Sent:         render.FormatColor(p.Sent),
			SentText:     render.FormatColor(p.SentText),
			Received:     render.FormatColor(p.Received),
			ReceivedText: render.FormatColor(p.ReceivedText),
			Background:   render.FormatColor(p.Background),
		},
		Expiry: conversation.DefaultExpiry,
	}
}

// Load reads the configuration file at path. Settings missing from the file
// keep their defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses and validates a configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("%w: style: %w", ErrInvalid, err)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("%w: layout: %w", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if c.Expiry < 0 {
		return fmt.Errorf("%w: expiry must not be negative, got %s", ErrInvalid, c.Expiry)
	}
	return nil
}

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	for _, f := range []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"sent", c.Colors.Sent, &p.Sent},
		{"sent_text", c.Colors.SentText, &p.SentText},
		{"received", c.Colors.Received, &p.Received},
		{"received_text", c.Colors.ReceivedText, &p.ReceivedText},
		{"background", c.Colors.Background, &p.Background},
	} {
		v, err := render.ParseColor(f.in)
		if err != nil {
			return render.Palette{}, fmt.Errorf("%w: colors.%s: %w", ErrInvalid, f.name, err)
		}
		*f.out = v
	}
	return p, nil
}

// RenderOptions returns the renderer configuration.
func (c *Config) RenderOptions() (render.Options, error) {
	p, err := c.Palette()
	if err != nil {
		return render.Options{}, err
	}
	style := c.Style
	return render.Options{Style: &style, Layout: c.Layout, Palette: p}, nil
}
