package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"

	"github.com/baptistax/qrfeed/internal/feed"
)

const DefaultPath = "~/.config/qrfeed/config.yml"

var ErrMissingCredentials = errors.New("reddit client_id, client_secret and user_agent must be set (REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET, REDDIT_USER_AGENT)")

type Config struct {
	Reddit struct {
		ClientID     string `yaml:"client_id" env:"REDDIT_CLIENT_ID" env-description:"Reddit application client id"`
		ClientSecret string `yaml:"client_secret" env:"REDDIT_CLIENT_SECRET" env-description:"Reddit application client secret"`
		UserAgent    string `yaml:"user_agent" env:"REDDIT_USER_AGENT" env-description:"User-Agent sent to Reddit"`
		BaseURL      string `yaml:"base_url" env:"REDDIT_API_URL" env-default:"https://oauth.reddit.com"`
		TokenURL     string `yaml:"token_url" env:"REDDIT_TOKEN_URL" env-default:"https://www.reddit.com/api/v1/access_token"`
	} `yaml:"reddit"`
	Feed struct {
		Name   string `yaml:"name" env:"QRFEED_FEED" env-default:"lego" env-description:"subreddit to scan"`
		Window string `yaml:"window" env:"QRFEED_WINDOW" env-default:"day"`
		Limit  int    `yaml:"limit" env:"QRFEED_LIMIT" env-default:"0" env-description:"max posts per walk, 0 for no limit"`
	} `yaml:"feed"`
	HTTP struct {
		Timeout  time.Duration `yaml:"timeout" env:"QRFEED_HTTP_TIMEOUT" env-default:"30s"`
		MaxBytes int64         `yaml:"max_bytes" env:"QRFEED_HTTP_MAX_BYTES" env-default:"67108864"`
	} `yaml:"http"`
	Decoder struct {
		MaxPixels       int  `yaml:"max_pixels" env:"QRFEED_MAX_PIXELS" env-default:"89478485"`
		WarnLargeImages bool `yaml:"warn_large_images" env:"QRFEED_WARN_LARGE_IMAGES" env-default:"false"`
	} `yaml:"decoder"`
	Log struct {
		Level string `yaml:"level" env:"QRFEED_LOG_LEVEL" env-default:"info"`
	} `yaml:"log"`
	Watch struct {
		Schedule string `yaml:"schedule" env:"QRFEED_SCHEDULE" env-default:"0 * * * *"`
	} `yaml:"watch"`
}

// Load reads the YAML file at path (when present) and then the environment.
// A missing file is only an error when it is not the default location.
func Load(path string) (Config, error) {
	var cfg Config

	p, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return Config{}, fmt.Errorf("cannot expand config path %q: %w", path, err)
	}

	if p != "" {
		_, statErr := os.Stat(p)
		switch {
		case statErr == nil:
			if err := cleanenv.ReadConfig(p, &cfg); err != nil {
				return Config{}, fmt.Errorf("cannot read config %s: %w", p, err)
			}
			return cfg, nil
		case !os.IsNotExist(statErr) || path != DefaultPath:
			return Config{}, fmt.Errorf("cannot access config %s: %w", p, statErr)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read environment: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Reddit.ClientID) == "" || strings.TrimSpace(c.Reddit.ClientSecret) == "" || strings.TrimSpace(c.Reddit.UserAgent) == "" {
		return ErrMissingCredentials
	}
	if strings.TrimSpace(c.Feed.Name) == "" {
		return errors.New("feed name is empty")
	}
	if _, err := feed.ParseTimeWindow(c.Feed.Window); err != nil {
		return err
	}
	if c.Feed.Limit < 0 {
		return fmt.Errorf("feed limit must not be negative, got %d", c.Feed.Limit)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	return nil
}

func (c Config) Window() feed.TimeWindow {
	w, err := feed.ParseTimeWindow(c.Feed.Window)
	if err != nil {
		return feed.WindowDay
	}
	return w
}

// Usage describes the environment variables Load understands.
func Usage() string {
	var cfg Config
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}
