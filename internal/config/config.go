package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glabrego/fours-cli/internal/fourchan"
	"github.com/glabrego/fours-cli/internal/render"
	"github.com/glabrego/fours-cli/internal/tui/theme"
)

const (
	defaultOutputDir = "/tmp"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultTheme     = "default"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL      string        `yaml:"api_base_url"`
	SiteURL         string        `yaml:"site_url"`
	ImageBaseURL    string        `yaml:"image_base_url"`
	OutputDir       string        `yaml:"output_dir"`
	WrapWidth       int           `yaml:"wrap_width"`
	Banner          bool          `yaml:"banner"`
	Numbers         bool          `yaml:"numbers"`
	Theme           string        `yaml:"theme"`
	RequestInterval time.Duration `yaml:"request_interval"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
	Log             LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
	File   string `yaml:"file"`
}

func Default() Config {
	return Config{
		APIBaseURL:      fourchan.DefaultAPIBaseURL,
		SiteURL:         fourchan.DefaultSiteURL,
		ImageBaseURL:    fourchan.DefaultImageBaseURL,
		OutputDir:       defaultOutputDir,
		WrapWidth:       render.DefaultWidth,
		RequestInterval: fourchan.DefaultRequestInterval,
		Theme:           defaultTheme,
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Load reads the optional YAML file at path, then applies environment
// overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML config file on top of the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString := func(name string, dst *string) {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			*dst = v
		}
	}
	setString("FOURS_API_BASE_URL", &c.APIBaseURL)
	setString("FOURS_SITE_URL", &c.SiteURL)
	setString("FOURS_IMAGE_BASE_URL", &c.ImageBaseURL)
	setString("FOURS_OUTPUT_DIR", &c.OutputDir)
	setString("FOURS_THEME", &c.Theme)
	setString("FOURS_LOG_LEVEL", &c.Log.Level)
	setString("FOURS_LOG_FORMAT", &c.Log.Format)
	setString("FOURS_LOG_FILE", &c.Log.File)

	if v := strings.TrimSpace(getenv("FOURS_WRAP_WIDTH")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FOURS_WRAP_WIDTH must be an integer: %s", v)
		}
		c.WrapWidth = n
	}
	if v := strings.TrimSpace(getenv("FOURS_BANNER")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOURS_BANNER must be a boolean: %s", v)
		}
		c.Banner = b
	}
	if v := strings.TrimSpace(getenv("FOURS_NUMBERS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOURS_NUMBERS must be a boolean: %s", v)
		}
		c.Numbers = b
	}
	if v := strings.TrimSpace(getenv("FOURS_REQUEST_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOURS_REQUEST_INTERVAL must be a duration: %s", v)
		}
		c.RequestInterval = d
	}
	if v := strings.TrimSpace(getenv("FOURS_HTTP_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOURS_HTTP_TIMEOUT must be a duration: %s", v)
		}
		c.HTTPTimeout = d
	}
	return nil
}

func (c Config) Validate() error {
	for _, u := range []struct {
		name  string
		value string
	}{
		{"APIBaseURL", c.APIBaseURL},
		{"SiteURL", c.SiteURL},
		{"ImageBaseURL", c.ImageBaseURL},
	} {
		if u.value == "" {
			return fmt.Errorf("%s is required", u.name)
		}
		if !strings.HasPrefix(u.value, "http://") && !strings.HasPrefix(u.value, "https://") {
			return fmt.Errorf("%s must be an http(s) URL: %s", u.name, u.value)
		}
		if u.value[len(u.value)-1] == '/' {
			return fmt.Errorf("%s must not end with '/': %s", u.name, u.value)
		}
	}
	if c.OutputDir == "" {
		return errors.New("OutputDir is required")
	}
	if c.WrapWidth < 1 {
		return fmt.Errorf("WrapWidth must be positive: %d", c.WrapWidth)
	}
	if c.RequestInterval < 0 {
		return fmt.Errorf("RequestInterval must not be negative: %s", c.RequestInterval)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTPTimeout must not be negative: %s", c.HTTPTimeout)
	}
	if _, err := theme.ByName(c.Theme); err != nil {
		return fmt.Errorf("Theme: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("Log.Format must be text or json: %s", c.Log.Format)
	}
	return nil
}

func (c Config) Links() fourchan.Links {
	return fourchan.Links{Site: c.SiteURL, ImageBase: c.ImageBaseURL}
}

// UITheme resolves the configured theme; Validate has already checked the name.
func (c Config) UITheme() theme.Theme {
	th, err := theme.ByName(c.Theme)
	if err != nil {
		return theme.Default()
	}
	return th
}

func (c Config) RenderOptions() render.Options {
	return render.Options{Width: c.WrapWidth, Banner: c.Banner}
}
