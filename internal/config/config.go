package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	// SlackBotUserID is resolved with auth.test when empty.
	SlackBotUserID string
	AdminUserIDs   []string

	// FeedSecret signs calendar feed links. It falls back to SlackSigningSecret.
	FeedSecret string
	// PublicURL is the externally reachable base URL used in feed links.
	PublicURL string

	DatabasePath string
	Port         string
	Timezone     string
	// TimetableSource is a file path or an http(s) URL of the CSV time table.
	// It has no default: data/timetable.sample.csv only covers one week.
	TimetableSource string

	DefaultLocation string
	DefaultLanguage string

	DispatchInterval time.Duration
	DrainTimeout     time.Duration
	CalendarDays     int

	LogLevel  string
	LogPretty bool
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackBotUserID:     getEnv("SLACK_BOT_USER_ID", ""),
		AdminUserIDs:       getEnvList("ADMIN_USER_IDS"),
		FeedSecret:         getEnv("FEED_SECRET", ""),
		PublicURL:          getEnv("PUBLIC_URL", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./prayer.db"),
		Port:               getEnv("PORT", "3000"),
		Timezone:           getEnv("TIMEZONE", domain.DefaultTimezone),
		TimetableSource:    getEnv("TIMETABLE_SOURCE", ""),
		DefaultLocation:    getEnv("DEFAULT_LOCATION", ""),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", domain.DefaultLanguage),
		DispatchInterval:   getEnvDuration("DISPATCH_INTERVAL", 50*time.Millisecond),
		DrainTimeout:       getEnvDuration("DRAIN_TIMEOUT", 30*time.Second),
		CalendarDays:       getEnvInt("CALENDAR_DAYS", 30),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPretty:          getEnvBool("LOG_PRETTY", false),
	}
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the settings every mode needs. Slack credentials are
// only required when serving.
func (c *Config) Validate(serve bool) error {
	var errs []error

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.TimetableSource == "" {
		errs = append(errs, errors.New("TIMETABLE_SOURCE is required"))
	}
	if lang, ok := domain.ParseLanguage(c.DefaultLanguage); !ok {
		errs = append(errs, fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", c.DefaultLanguage))
	} else {
		c.DefaultLanguage = lang
	}
	if c.DispatchInterval < 0 {
		errs = append(errs, fmt.Errorf("DISPATCH_INTERVAL must not be negative, got %s", c.DispatchInterval))
	}
	if c.DrainTimeout <= 0 {
		errs = append(errs, fmt.Errorf("DRAIN_TIMEOUT must be positive, got %s", c.DrainTimeout))
	}
	if c.CalendarDays < 1 || c.CalendarDays > 366 {
		errs = append(errs, fmt.Errorf("CALENDAR_DAYS must be between 1 and 366, got %d", c.CalendarDays))
	}

	if serve {
		if c.SlackBotToken == "" {
			errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
		}
		if c.SlackSigningSecret == "" {
			errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required"))
		}
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
