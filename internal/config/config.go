// Package config loads runtime settings from an optional YAML file and
// THAQU_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"thaqu/internal/catalog"
	"thaqu/internal/contact"
)

const (
	defaultLogLevel  = "info"
	defaultImageDir  = "public"
	defaultLocale    = "es"
	defaultConfigDir = "thaqu"
	defaultFileName  = "config.yaml"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config captures all runtime configuration organised by concern.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Images  ImageConfig   `yaml:"images"`
	Contact ContactConfig `yaml:"contact"`
	Log     LogConfig     `yaml:"log"`
	Locale  string        `yaml:"locale"`
}

// CatalogConfig points at an optional lot table; empty uses the built-in one.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ImageConfig locates the plan and satellite pictures. Relative paths are
// resolved against Dir.
type ImageConfig struct {
	Dir       string            `yaml:"dir"`
	Plan      string            `yaml:"plan"`
	Plans     map[string]string `yaml:"plans"`
	Satellite string            `yaml:"satellite"`
}

// ContactConfig stores where quote requests are addressed.
type ContactConfig struct {
	Email    string `yaml:"email"`
	WhatsApp string `yaml:"whatsapp"`
	Subject  string `yaml:"subject"`
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Images: ImageConfig{
			Dir:       defaultImageDir,
			Plan:      catalog.DefaultPlanImage,
			Plans:     map[string]string{},
			Satellite: catalog.DefaultSatelliteImage,
		},
		Contact: ContactConfig{
			Email:    contact.DefaultEmail,
			WhatsApp: contact.DefaultWhatsApp,
			Subject:  contact.DefaultSubject,
		},
		Log:    LogConfig{Level: defaultLogLevel},
		Locale: defaultLocale,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/thaqu/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defaultConfigDir, defaultFileName)
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	set(&c.Catalog.Path, "THAQU_CATALOG")
	set(&c.Images.Dir, "THAQU_IMAGE_DIR")
	set(&c.Contact.Email, "THAQU_CONTACT_EMAIL")
	set(&c.Contact.WhatsApp, "THAQU_WHATSAPP")
	set(&c.Log.File, "THAQU_LOG_FILE")
	set(&c.Log.Level, "THAQU_LOG_LEVEL", "LOG_LEVEL")
	set(&c.Locale, "THAQU_LANG")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Contact.Email) == "" {
		problems = append(problems, "contact.email is empty")
	}
	if c.Contact.WhatsApp != "" && strings.Trim(c.Contact.WhatsApp, "0123456789") != "" {
		problems = append(problems, fmt.Sprintf("contact.whatsapp %q must be digits only", c.Contact.WhatsApp))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ImagePath resolves an image reference against the image directory.
func (c Config) ImagePath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Images.Dir == "" {
		return p
	}
	return filepath.Join(c.Images.Dir, p)
}

// CatalogOptions turns the image settings into catalog options with paths
// already resolved.
func (c Config) CatalogOptions() []catalog.Option {
	plans := make(map[string]string, len(c.Images.Plans))
	for id, p := range c.Images.Plans {
		plans[id] = c.ImagePath(p)
	}
	return []catalog.Option{
		catalog.WithPlanImages(plans, c.ImagePath(c.Images.Plan)),
		catalog.WithSatelliteImage(c.ImagePath(c.Images.Satellite)),
	}
}

// LoadCatalog builds the configured catalog, falling back to the built-in
// lot table.
func (c Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.Catalog.Path == "" {
		return catalog.New(catalog.DefaultLots(), c.CatalogOptions()...)
	}
	return catalog.Load(c.Catalog.Path, c.CatalogOptions()...)
}
