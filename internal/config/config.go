package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	ModeTabs   = "tabs"
	ModeSingle = "single"
)

// Config holds all configuration for the application
type Config struct {
	Steam  SteamConfig  `mapstructure:"steam"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// SteamConfig holds inventory API configuration
type SteamConfig struct {
	BaseURL      string  `mapstructure:"base_url" validate:"required,url"`
	ImageBaseURL string  `mapstructure:"image_base_url" validate:"required,url"`
	ImageSuffix  string  `mapstructure:"image_suffix"`
	OwnerID      string  `mapstructure:"owner_id" validate:"required,numeric"`
	AppIDs       []int64 `mapstructure:"app_ids" validate:"dive,gt=0"` // empty means the whole catalog registry
	ContextID    int     `mapstructure:"context_id" validate:"gt=0"`
	Language     string  `mapstructure:"language" validate:"required"`

	// Page sizes for the tabbed and the single-catalog report
	PageSize       int `mapstructure:"page_size" validate:"gt=0,lte=5000"`
	SinglePageSize int `mapstructure:"single_page_size" validate:"gt=0,lte=5000"`

	RequestDelay         time.Duration `mapstructure:"request_delay" validate:"gte=0"`
	Timeout              time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRequestsPerSecond int           `mapstructure:"max_requests_per_second" validate:"gt=0"`
	UserAgent            string        `mapstructure:"user_agent"`
	Proxies              []string      `mapstructure:"proxies" validate:"dive,url"`
}

// ReportConfig holds output document configuration
type ReportConfig struct {
	Mode   string `mapstructure:"mode" validate:"oneof=tabs single"`
	Output string `mapstructure:"output" validate:"required"`
	Title  string `mapstructure:"title" validate:"required"`
	Lang   string `mapstructure:"lang" validate:"required"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load loads configuration from config.yaml in the working directory with
// INVENTORY_* environment variable overrides
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads config.yaml from dir
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix("inventory")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.yaml file not found in %s", dir)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := language.Parse(c.Report.Lang); err != nil {
		return fmt.Errorf("invalid config: report.lang %q: %w", c.Report.Lang, err)
	}

	if c.Report.Mode == ModeSingle && len(c.Steam.AppIDs) != 1 {
		return fmt.Errorf("invalid config: report.mode single needs exactly one app id, got %d", len(c.Steam.AppIDs))
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("steam.base_url", "https://steamcommunity.com")
	v.SetDefault("steam.image_base_url", "https://community.akamai.steamstatic.com/economy/image/")
	v.SetDefault("steam.image_suffix", "/330x192?allow_animated=1")
	v.SetDefault("steam.owner_id", "")
	v.SetDefault("steam.app_ids", []int64{})
	v.SetDefault("steam.context_id", 2)
	v.SetDefault("steam.language", "russian")
	v.SetDefault("steam.page_size", 1000)
	v.SetDefault("steam.single_page_size", 100)
	v.SetDefault("steam.request_delay", 10*time.Second)
	v.SetDefault("steam.timeout", 60*time.Second)
	v.SetDefault("steam.max_requests_per_second", 1)
	v.SetDefault("steam.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	v.SetDefault("steam.proxies", []string{})

	v.SetDefault("report.mode", ModeTabs)
	v.SetDefault("report.output", "inventory.html")
	v.SetDefault("report.title", "Инвентарь Steam")
	v.SetDefault("report.lang", "ru")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
